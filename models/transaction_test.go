package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"kakeibo/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	var d models.Date
	if err := d.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func validTransaction(t *testing.T) models.Transaction {
	return models.NewTransaction(
		mustDate(t, "2023-11-20"),
		"Lunch",
		"Food",
		decimal.RequireFromString("850.50"),
		models.TypeExpense,
	)
}

func TestTransaction_Validate_ValidRecord(t *testing.T) {
	txn := validTransaction(t)
	assert.Empty(t, txn.Validate())
}

func TestTransaction_Validate_Amount(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"zero rejected", "0.00", false},
		{"negative rejected", "-5.00", false},
		{"three decimal places rejected", "100.999", false},
		{"two decimal places accepted", "100.50", true},
		{"smallest positive accepted", "0.01", true},
		{"nine integer digits rejected", "100000000.00", false},
		{"eight integer digits accepted", "99999999.99", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txn := validTransaction(t)
			txn.Amount = decimal.RequireFromString(tc.amount)
			errs := txn.Validate()
			if tc.valid {
				assert.NotContains(t, errs, "amount")
			} else {
				assert.Contains(t, errs, "amount")
			}
		})
	}
}

func TestTransaction_Validate_Type(t *testing.T) {
	txn := validTransaction(t)
	txn.Type = "SAVINGS"
	assert.Contains(t, txn.Validate(), "type")

	txn.Type = models.TypeIncome
	assert.NotContains(t, txn.Validate(), "type")

	txn.Type = ""
	assert.Contains(t, txn.Validate(), "type")
}

func TestTransaction_Validate_Description(t *testing.T) {
	txn := validTransaction(t)
	txn.Description = ""
	assert.Contains(t, txn.Validate(), "description")

	txn.Description = "   "
	assert.Contains(t, txn.Validate(), "description")

	txn.Description = strings.Repeat("a", 256)
	assert.Contains(t, txn.Validate(), "description")

	txn.Description = strings.Repeat("a", 255)
	assert.NotContains(t, txn.Validate(), "description")
}

func TestTransaction_Validate_Category(t *testing.T) {
	txn := validTransaction(t)
	txn.Category = ""
	assert.Contains(t, txn.Validate(), "category")

	txn.Category = strings.Repeat("c", 101)
	assert.Contains(t, txn.Validate(), "category")

	txn.Category = strings.Repeat("c", 100)
	assert.NotContains(t, txn.Validate(), "category")
}

func TestTransaction_Validate_Date(t *testing.T) {
	txn := validTransaction(t)
	txn.TransactionDate = models.Date{}
	assert.Contains(t, txn.Validate(), "transactionDate")
}

func TestTransaction_Validate_AllFieldsMissing(t *testing.T) {
	var txn models.Transaction
	errs := txn.Validate()
	for _, field := range []string{"transactionDate", "description", "category", "amount", "type"} {
		assert.Contains(t, errs, field)
	}
}

func TestDate_JSON(t *testing.T) {
	d := mustDate(t, "2023-11-20")
	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2023-11-20"`, string(b))

	var bad models.Date
	assert.Error(t, bad.UnmarshalJSON([]byte(`"20/11/2023"`)))

	var absent models.Date
	assert.NoError(t, absent.UnmarshalJSON([]byte(`null`)))
	assert.True(t, absent.IsZero())
}
