package medicine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsExpired(t *testing.T) {
	expiry := time.Date(2028, 9, 30, 0, 0, 0, 0, time.UTC)
	m := &Medicine{ID: "M1", ExpiryDate: expiry}

	assert.False(t, m.IsExpired(expiry.AddDate(0, 0, -1)))
	assert.False(t, m.IsExpired(expiry))
	assert.True(t, m.IsExpired(expiry.AddDate(0, 0, 1)))
}

func TestTotalValue(t *testing.T) {
	m := &Medicine{UnitPrice: 1000, Quantity: 100}
	assert.Equal(t, 100000.0, m.TotalValue())
}

func TestAddMedicineCommand_Validate(t *testing.T) {
	valid := AddMedicineCommand{
		ID:         "M1",
		Name:       "Napa",
		UnitPrice:  1000,
		Quantity:   100,
		ExpiryDate: time.Date(2028, 9, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())

	free := valid
	free.UnitPrice = 0
	assert.NoError(t, free.Validate(), "zero price is allowed")

	empty := valid
	empty.Quantity = 0
	assert.NoError(t, empty.Validate(), "zero stock is allowed at creation")
}
