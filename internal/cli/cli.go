// Package cli is the interactive collaborator: it owns the menus and
// keystroke parsing and delegates everything else to the services. All
// recoverable errors are printed and the user is re-prompted.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/domain/customer"
	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
	"github.com/tahmidr/pharmatrack/internal/service"
)

const dateLayout = "2006-01-02"

type CLI struct {
	in        *bufio.Reader
	out       io.Writer
	inventory *service.InventoryService
	purchases *service.PurchaseService
	auth      *service.AuthService
	log       *zap.Logger
}

func New(
	in io.Reader,
	out io.Writer,
	inventory *service.InventoryService,
	purchases *service.PurchaseService,
	auth *service.AuthService,
	log *zap.Logger,
) *CLI {
	return &CLI{
		in:        bufio.NewReader(in),
		out:       out,
		inventory: inventory,
		purchases: purchases,
		auth:      auth,
		log:       log,
	}
}

// Run drives the top-level role menu until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	c.log.Info("interactive session started")
	fmt.Fprintln(c.out, "-------PHARMACY MANAGEMENT SYSTEM------")

	for {
		fmt.Fprintln(c.out, "\nChoose Role:")
		fmt.Fprintln(c.out, "1. Customer")
		fmt.Fprintln(c.out, "2. Pharmacist")
		fmt.Fprintln(c.out, "3. Exit")

		choice, err := c.readInt("Select option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(c.out, "Invalid option. Try again.")
			continue
		}

		switch choice {
		case 1:
			if err := c.customerMenu(ctx); err != nil {
				return err
			}
		case 2:
			secret, err := c.readLine("Enter pharmacist password: ")
			if err != nil {
				return nil
			}
			if err := c.auth.Authenticate(secret); err != nil {
				fmt.Fprintln(c.out, "Incorrect password. Access denied.")
				continue
			}
			if err := c.pharmacistMenu(ctx); err != nil {
				return err
			}
		case 3:
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
	}
}

func (c *CLI) customerMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Customer Menu ---")
	customerID, err := c.readLine("Enter Customer ID: ")
	if err != nil {
		return nil
	}

	// Probe the ledger so an unknown ID is rejected before the submenu.
	if _, err := c.purchases.History(ctx, customerID); err != nil {
		fmt.Fprintf(c.out, "Customer ID %s not found.\n", customerID)
		return nil
	}

	for {
		fmt.Fprintln(c.out, "\n1. View Purchase History")
		fmt.Fprintln(c.out, "2. Buy Medicine")
		fmt.Fprintln(c.out, "3. Go Back")

		choice, err := c.readInt("Choose option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(c.out, "Invalid option. Try again.")
			continue
		}

		switch choice {
		case 1:
			c.showHistory(ctx, customerID)
		case 2:
			c.buyMedicine(ctx, customerID)
		case 3:
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
	}
}

func (c *CLI) pharmacistMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Pharmacist Menu ---")

	for {
		fmt.Fprintln(c.out, "\n1. Add Medicine")
		fmt.Fprintln(c.out, "2. View Inventory")
		fmt.Fprintln(c.out, "3. Find Medicine by Name")
		fmt.Fprintln(c.out, "4. Update Medicine Quantity")
		fmt.Fprintln(c.out, "5. Remove Medicine")
		fmt.Fprintln(c.out, "6. View Manager Info")
		fmt.Fprintln(c.out, "7. Go Back")

		choice, err := c.readInt("Choose option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(c.out, "Invalid option. Try again.")
			continue
		}

		switch choice {
		case 1:
			c.addMedicine(ctx)
		case 2:
			c.showInventory(ctx)
		case 3:
			c.findByName(ctx)
		case 4:
			c.updateQuantity(ctx)
		case 5:
			c.removeMedicine(ctx)
		case 6:
			c.showManager()
		case 7:
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
	}
}

func (c *CLI) addMedicine(ctx context.Context) {
	id, err := c.readLine("Enter Medicine ID: ")
	if err != nil {
		return
	}
	name, err := c.readLine("Enter Medicine Name: ")
	if err != nil {
		return
	}
	price, err := c.readFloat("Enter Price: ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid price.")
		return
	}
	quantity, err := c.readInt("Enter Quantity: ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid quantity.")
		return
	}
	expiry, err := c.readDate("Enter Expiry Date (yyyy-MM-dd): ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid date format. Please use yyyy-MM-dd.")
		return
	}

	_, err = c.inventory.AddMedicine(ctx, &medicine.AddMedicineCommand{
		ID:         id,
		Name:       name,
		UnitPrice:  price,
		Quantity:   quantity,
		ExpiryDate: expiry,
	})
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, "Medicine added successfully.")
}

func (c *CLI) showInventory(ctx context.Context) {
	list, err := c.inventory.ListInventory(ctx)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No medicines in inventory.")
		return
	}
	for _, m := range list {
		c.printMedicine(m)
	}
}

func (c *CLI) findByName(ctx context.Context) {
	name, err := c.readLine("Enter Medicine Name: ")
	if err != nil {
		return
	}
	matches, err := c.inventory.FindByName(ctx, name)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "Medicine not found.")
		return
	}
	for _, m := range matches {
		c.printMedicine(m)
	}
}

func (c *CLI) updateQuantity(ctx context.Context) {
	id, err := c.readLine("Enter Medicine ID to update: ")
	if err != nil {
		return
	}
	quantity, err := c.readInt("Enter new quantity: ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid quantity.")
		return
	}
	if _, err := c.inventory.UpdateQuantity(ctx, id, quantity); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Quantity updated to: %d\n", quantity)
}

func (c *CLI) removeMedicine(ctx context.Context) {
	id, err := c.readLine("Enter Medicine ID to remove: ")
	if err != nil {
		return
	}
	if err := c.inventory.RemoveMedicine(ctx, id); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, "Medicine removed successfully.")
}

func (c *CLI) showManager() {
	m := c.auth.Manager()
	fmt.Fprintf(c.out, "Manager ID: %s\n", m.ID)
	fmt.Fprintf(c.out, "Name: %s\n", m.Name)
	fmt.Fprintf(c.out, "Contact Info: %s\n", m.ContactInfo)
}

func (c *CLI) showHistory(ctx context.Context, customerID string) {
	history, err := c.purchases.History(ctx, customerID)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Purchase History for Customer ID: %s\n", customerID)
	for _, p := range history {
		c.printPurchase(p)
	}
}

func (c *CLI) buyMedicine(ctx context.Context, customerID string) {
	medicineID, err := c.readLine("Enter Medicine ID for purchase: ")
	if err != nil {
		return
	}
	quantity, err := c.readInt("Enter quantity to purchase: ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid quantity.")
		return
	}
	purchaseID, err := c.readLine("Enter Purchase ID (blank to auto-generate): ")
	if err != nil {
		return
	}

	p, err := c.purchases.Purchase(ctx, &service.PurchaseCommand{
		CustomerID: customerID,
		MedicineID: medicineID,
		Quantity:   quantity,
		PurchaseID: purchaseID,
	})
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, "Purchase added successfully.")
	c.printPurchase(*p)
}

func (c *CLI) printMedicine(m *medicine.Medicine) {
	fmt.Fprintf(c.out, "Medicine ID: %s\nName: %s\nPrice: %.2f\nQuantity: %d\nExpiry Date: %s\n",
		m.ID, m.Name, m.UnitPrice, m.Quantity, m.ExpiryDate.Format(dateLayout))
	if m.IsExpired(time.Now()) {
		fmt.Fprintln(c.out, "The medicine is expired.")
	} else {
		fmt.Fprintln(c.out, "The medicine is not expired.")
	}
	fmt.Fprintln(c.out)
}

func (c *CLI) printPurchase(p customer.Purchase) {
	fmt.Fprintf(c.out, "Purchase ID: %s\nMedicine: %s\nQuantity: %d\nPurchase Date: %s\nTotal Cost: %.2f\n\n",
		p.ID, p.MedicineName, p.Quantity, p.PurchasedAt.Format(time.RFC1123), p.TotalCost)
}

func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func (c *CLI) readFloat(prompt string) (float64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(line, 64)
}

func (c *CLI) readDate(prompt string) (time.Time, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(dateLayout, line)
}
