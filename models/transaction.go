package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. JSON uses YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer for the date column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner. Postgres hands dates back as time.Time,
// other drivers may use strings or bytes.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = t
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

// Transaction is a single dated income or expense record in the household ledger.
// The ID is assigned by the store on first save and never changes afterwards.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`
	TransactionDate Date            `gorm:"type:date;not null" json:"transactionDate"`
	Description     string          `gorm:"size:255;not null" json:"description"`
	Category        string          `gorm:"size:100;not null" json:"category"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Type            TransactionType `gorm:"size:10;not null" json:"type"`
}

// NewTransaction builds an unsaved transaction from the five mutable fields.
func NewTransaction(date Date, description, category string, amount decimal.Decimal, typ TransactionType) Transaction {
	return Transaction{
		TransactionDate: date,
		Description:     description,
		Category:        category,
		Amount:          amount,
		Type:            typ,
	}
}

// maxAmount is the exclusive upper bound: at most 8 integer digits.
var maxAmount = decimal.New(1, 8)

// Validate checks every field constraint and returns one message per violated
// field. An empty map means the record may be persisted.
func (t *Transaction) Validate() map[string]string {
	errs := make(map[string]string)

	if t.TransactionDate.IsZero() {
		errs["transactionDate"] = "transaction date is required"
	}

	if strings.TrimSpace(t.Description) == "" {
		errs["description"] = "description is required"
	}
	if utf8.RuneCountInString(t.Description) > 255 {
		errs["description"] = "description must be at most 255 characters"
	}

	if strings.TrimSpace(t.Category) == "" {
		errs["category"] = "category is required"
	}
	if utf8.RuneCountInString(t.Category) > 100 {
		errs["category"] = "category must be at most 100 characters"
	}

	switch {
	case t.Amount.LessThanOrEqual(decimal.Zero):
		errs["amount"] = "amount must be greater than 0"
	case t.Amount.Exponent() < -2:
		errs["amount"] = "amount allows at most 2 decimal places"
	case t.Amount.GreaterThanOrEqual(maxAmount):
		errs["amount"] = "amount allows at most 8 integer digits"
	}

	if !t.Type.Valid() {
		errs["type"] = "type must be INCOME or EXPENSE"
	}

	return errs
}
