// Package budget implements the derived-state computations of the
// backend: ratio-conformant budget splits, per-cycle and cumulative
// statistics, the check-in streak state machine and achievement
// detection. Everything in this package is a pure function over plain
// values; persistence and transport live elsewhere.
package budget

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Category classifies an expense.
type Category string

const (
	CategoryEssential Category = "essential"
	CategoryFlexible  Category = "flexible"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	return c == CategoryEssential || c == CategoryFlexible
}

// Config is the ratio split of a monthly income. Committed configs
// satisfy investment + savings + consumption == 100; the computations
// here do not crash when that is violated, they just scale accordingly.
type Config struct {
	Income                decimal.Decimal
	Payday                int
	InvestmentRatio       uint
	SavingsRatio          uint
	ConsumptionRatio      uint
	InvestmentTransferred bool
	SavingsTransferred    bool
}

// Share returns the part of the income a ratio allocates.
func Share(income decimal.Decimal, ratio uint) decimal.Decimal {
	return income.Mul(decimal.NewFromInt(int64(ratio))).Div(hundred)
}

// InvestmentBudget returns the income share allocated to investment.
func (c Config) InvestmentBudget() decimal.Decimal {
	return Share(c.Income, c.InvestmentRatio)
}

// SavingsBudget returns the income share allocated to savings.
func (c Config) SavingsBudget() decimal.Decimal {
	return Share(c.Income, c.SavingsRatio)
}

// ConsumptionBudget returns the income share allocated to consumption.
func (c Config) ConsumptionBudget() decimal.Decimal {
	return Share(c.Income, c.ConsumptionRatio)
}

// Snapshot is the configuration of one budgeting cycle as it stood
// for that cycle.
type Snapshot struct {
	Month  types.Month
	Config Config
}

// Entry is one ledger expense as the engine sees it.
type Entry struct {
	Amount   decimal.Decimal
	Category Category
	Date     time.Time
}
