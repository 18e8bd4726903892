package models

import (
	"encoding/json"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
	"gorm.io/gorm"
)

// MonthlyBudget is the snapshot of the budget configuration as it
// stood for one cycle. The month is the identity: at most one row per
// month exists, and only the current month's row is ever replaced.
type MonthlyBudget struct {
	Timestamps
	Month        types.Month `json:"month" gorm:"primaryKey" example:"2025-03-01T00:00:00.000000Z"` // The cycle this snapshot belongs to
	BudgetSplit  `gorm:"embedded"`
	GoalAchieved bool `json:"goalAchieved" example:"false"` // Has the budget goal been confirmed for this cycle?
}

func (m *MonthlyBudget) BeforeSave(_ *gorm.DB) error {
	return m.BudgetSplit.Validate()
}

// Snapshot returns the row as input for the computation engine.
func (m MonthlyBudget) Snapshot() budget.Snapshot {
	return budget.Snapshot{
		Month:  m.Month,
		Config: m.BudgetSplit.Engine(),
	}
}

// upsertMonthlyBudget creates the snapshot for the given month or
// replaces its split in place when one exists already.
func upsertMonthlyBudget(tx *gorm.DB, month types.Month, split BudgetSplit) error {
	var snapshot MonthlyBudget

	err := tx.First(&snapshot, "month = ?", month).Error
	if err == nil {
		snapshot.BudgetSplit = split
		return tx.Save(&snapshot).Error
	}

	snapshot = MonthlyBudget{Month: month, BudgetSplit: split}
	return tx.Create(&snapshot).Error
}

// MonthlyBudgets returns all snapshots, oldest cycle first.
func MonthlyBudgets() ([]MonthlyBudget, error) {
	var snapshots []MonthlyBudget
	err := DB.Order("date(month) ASC").Find(&snapshots).Error
	return snapshots, err
}

// Snapshots returns the full history as engine input.
func Snapshots() ([]budget.Snapshot, error) {
	rows, err := MonthlyBudgets()
	if err != nil {
		return nil, err
	}

	snapshots := make([]budget.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, row.Snapshot())
	}

	return snapshots, nil
}

// MarkGoalAchieved records the budget goal confirmation for the given
// month. It reports whether the flag was newly set, which makes the
// achievement event fire at most once per cycle.
func MarkGoalAchieved(month types.Month) (bool, error) {
	var snapshot MonthlyBudget
	err := DB.First(&snapshot, "month = ?", month).Error
	if err != nil {
		return false, err
	}

	if snapshot.GoalAchieved {
		return false, nil
	}

	snapshot.GoalAchieved = true
	err = DB.Save(&snapshot).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// Returns all monthly budget snapshots on this instance for export
func (MonthlyBudget) Export() (json.RawMessage, error) {
	snapshots := make([]MonthlyBudget, 0)
	err := DB.Order("date(month) ASC").Find(&snapshots).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&snapshots)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
