package customer

import "time"

type Customer struct {
	ID          string
	Name        string
	ContactInfo string

	CreatedAt time.Time
}

// Purchase is an immutable record of one completed sale. MedicineName and
// UnitPrice are captured at purchase time; later catalogue edits must not
// rewrite history, so the record never aliases the live catalogue entry.
type Purchase struct {
	ID           string
	MedicineID   string
	MedicineName string
	Quantity     int
	UnitPrice    float64
	TotalCost    float64
	PurchasedAt  time.Time
}
