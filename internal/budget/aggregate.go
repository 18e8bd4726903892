package budget

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
	"github.com/shopspring/decimal"
)

// Level grades how much of the consumption budget a cycle has used.
type Level string

const (
	LevelOK       Level = "ok"       // below 70 %
	LevelWarning  Level = "warning"  // 70 % and above
	LevelCritical Level = "critical" // 90 % and above
	LevelExceeded Level = "exceeded" // spent more than the budget
)

// Stats are the derived figures for the cycle containing "today" plus
// the cumulative figures across all recorded cycles.
type Stats struct {
	Month             types.Month     `json:"month"`
	InvestmentBudget  decimal.Decimal `json:"investmentBudget"`
	SavingsBudget     decimal.Decimal `json:"savingsBudget"`
	ConsumptionBudget decimal.Decimal `json:"consumptionBudget"`
	Spent             decimal.Decimal `json:"spent"`
	Remaining         decimal.Decimal `json:"remaining"`
	PercentageUsed    decimal.Decimal `json:"percentageUsed"`
	Level             Level           `json:"level"`
	Essential         decimal.Decimal `json:"essential"`
	Flexible          decimal.Decimal `json:"flexible"`
	TotalProgress     decimal.Decimal `json:"totalProgress"`
	Cumulative        Cumulative      `json:"cumulative"`
}

// Cumulative sums figures across all recorded cycles. Investment and
// savings only count cycles whose transfer was confirmed; consumption
// is the actual spend; surplus accumulates under-spend only.
type Cumulative struct {
	Investment  decimal.Decimal `json:"investment"`
	Savings     decimal.Decimal `json:"savings"`
	Consumption decimal.Decimal `json:"consumption"`
	Surplus     decimal.Decimal `json:"surplus"`
}

// monthSpent sums the amounts of all entries dated in the given month.
func monthSpent(entries []Entry, month types.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range entries {
		if month.Contains(entry.Date) {
			sum = sum.Add(entry.Amount)
		}
	}

	return sum
}

// percentageOf returns spent/budget as a percentage. A zero budget
// degrades to 0 % instead of dividing by zero.
func percentageOf(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}

	return spent.Div(budget).Mul(hundred)
}

// level grades the consumption usage of a cycle.
func level(remaining, percentageUsed decimal.Decimal) Level {
	switch {
	case remaining.IsNegative():
		return LevelExceeded
	case percentageUsed.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return LevelCritical
	case percentageUsed.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return LevelWarning
	default:
		return LevelOK
	}
}

// Aggregate computes the Stats for the cycle containing today from the
// current configuration, the snapshot history and the full ledger.
func Aggregate(config Config, snapshots []Snapshot, entries []Entry, today time.Time) Stats {
	month := types.MonthOf(today)

	consumptionBudget := config.ConsumptionBudget()
	spent := monthSpent(entries, month)
	percentageUsed := percentageOf(spent, consumptionBudget)
	remaining := consumptionBudget.Sub(spent)

	essential := decimal.Zero
	flexible := decimal.Zero
	for _, entry := range entries {
		if !month.Contains(entry.Date) {
			continue
		}

		switch entry.Category {
		case CategoryEssential:
			essential = essential.Add(entry.Amount)
		case CategoryFlexible:
			flexible = flexible.Add(entry.Amount)
		}
	}

	return Stats{
		Month:             month,
		InvestmentBudget:  config.InvestmentBudget(),
		SavingsBudget:     config.SavingsBudget(),
		ConsumptionBudget: consumptionBudget,
		Spent:             spent,
		Remaining:         remaining,
		PercentageUsed:    percentageUsed,
		Level:             level(remaining, percentageUsed),
		Essential:         essential,
		Flexible:          flexible,
		TotalProgress:     TotalProgress(config, percentageUsed),
		Cumulative:        accumulate(snapshots, entries),
	}
}

// accumulate computes the cumulative figures across all snapshots.
// Each cycle's consumption budget is recomputed from the configuration
// recorded for that cycle, not from the current one.
func accumulate(snapshots []Snapshot, entries []Entry) Cumulative {
	c := Cumulative{
		Investment:  decimal.Zero,
		Savings:     decimal.Zero,
		Consumption: decimal.Zero,
		Surplus:     decimal.Zero,
	}

	for _, snapshot := range snapshots {
		spent := monthSpent(entries, snapshot.Month)

		if snapshot.Config.InvestmentTransferred {
			c.Investment = c.Investment.Add(snapshot.Config.InvestmentBudget())
		}
		if snapshot.Config.SavingsTransferred {
			c.Savings = c.Savings.Add(snapshot.Config.SavingsBudget())
		}
		c.Consumption = c.Consumption.Add(spent)

		surplus := snapshot.Config.ConsumptionBudget().Sub(spent)
		if surplus.IsPositive() {
			c.Surplus = c.Surplus.Add(surplus)
		}
	}

	return c
}

// TotalProgress is a composite 0-100 score: completed transfers raise
// it, high consumption usage lowers it.
func TotalProgress(config Config, percentageUsed decimal.Decimal) decimal.Decimal {
	investment := decimal.Zero
	if config.InvestmentTransferred {
		investment = hundred
	}

	savings := decimal.Zero
	if config.SavingsTransferred {
		savings = hundred
	}

	consumption := percentageUsed
	if consumption.GreaterThan(hundred) {
		consumption = hundred
	}

	return investment.Add(savings).Add(hundred.Sub(consumption)).Div(decimal.NewFromInt(3))
}
