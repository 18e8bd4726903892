package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// defaultMemo is the placeholder for expenses added without a memo.
const defaultMemo = "지출"

// Expense is one entry of the ledger: a dated, categorized amount.
type Expense struct {
	DefaultModel
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50000" minimum:"0.00000001"` // The amount spent
	Memo     string          `json:"memo" example:"점심" default:""`                                          // Free-text note, defaults to a placeholder
	Category budget.Category `json:"category" example:"flexible"`                                           // essential or flexible
	Date     time.Time       `json:"date" example:"2025-03-15T12:04:05.000000Z"`                            // When the money was spent
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Memo = strings.TrimSpace(e.Memo)
	if e.Memo == "" {
		e.Memo = defaultMemo
	}

	return nil
}

// AfterSave validates the final state of the row. Running after the
// write keeps partial updates honest: the check sees the merged
// values, and a violation rolls the enclosing transaction back.
func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if !e.Category.Valid() {
		return ErrExpenseCategoryInvalid
	}

	return nil
}

// Entry returns the expense as input for the computation engine.
func (e Expense) Entry() budget.Entry {
	return budget.Entry{
		Amount:   e.Amount,
		Category: e.Category,
		Date:     e.Date,
	}
}

// Entries returns the full ledger as engine input.
func Entries() ([]budget.Entry, error) {
	var expenses []Expense
	err := DB.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	entries := make([]budget.Entry, 0, len(expenses))
	for _, expense := range expenses {
		entries = append(entries, expense.Entry())
	}

	return entries, nil
}

// Returns all expenses on this instance for export, newest first
func (Expense) Export() (json.RawMessage, error) {
	expenses := make([]Expense, 0)
	err := DB.Order("date(date) DESC, created_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
