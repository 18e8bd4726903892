package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetSplit is the ratio split of a monthly income into the
// investment, savings and consumption buckets. It is embedded both in
// the current configuration and in the per-month snapshots.
type BudgetSplit struct {
	Income                decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)" example:"3000000" minimum:"0"` // Monthly income
	Payday                int             `json:"payday" example:"15" minimum:"1" maximum:"31"`                   // Day of the month the income cycle resets
	InvestmentRatio       uint            `json:"investmentRatio" example:"70"`                                   // Percentage of the income allocated to investment
	SavingsRatio          uint            `json:"savingsRatio" example:"20"`                                      // Percentage of the income allocated to savings
	ConsumptionRatio      uint            `json:"consumptionRatio" example:"10"`                                  // Percentage of the income allocated to consumption
	InvestmentTransferred bool            `json:"investmentTransferred" example:"true" default:"false"`           // Has the investment money been moved for this cycle?
	SavingsTransferred    bool            `json:"savingsTransferred" example:"false" default:"false"`             // Has the savings money been moved for this cycle?
}

// Validate checks the invariants that must hold for a committed split.
func (s BudgetSplit) Validate() error {
	if s.Income.IsNegative() {
		return ErrIncomeNegative
	}

	if s.Payday < 1 || s.Payday > 31 {
		return ErrPaydayOutOfRange
	}

	if s.InvestmentRatio+s.SavingsRatio+s.ConsumptionRatio != 100 {
		return ErrRatioSumInvalid
	}

	return nil
}

// Engine returns the split as input for the computation engine.
func (s BudgetSplit) Engine() budget.Config {
	return budget.Config{
		Income:                s.Income,
		Payday:                s.Payday,
		InvestmentRatio:       s.InvestmentRatio,
		SavingsRatio:          s.SavingsRatio,
		ConsumptionRatio:      s.ConsumptionRatio,
		InvestmentTransferred: s.InvestmentTransferred,
		SavingsTransferred:    s.SavingsTransferred,
	}
}

// BudgetConfig is the root configuration entity. Exactly one row is
// current; superseded configurations are kept as history.
type BudgetConfig struct {
	DefaultModel
	BudgetSplit `gorm:"embedded"`
	Current     bool `json:"current"` // Is this the configuration in effect?
}

func (c *BudgetConfig) BeforeSave(_ *gorm.DB) error {
	return c.BudgetSplit.Validate()
}

// CurrentConfig returns the configuration in effect. The absence of
// one means setup has not been completed.
func CurrentConfig() (BudgetConfig, error) {
	var config BudgetConfig
	err := DB.First(&config, "current = ?", true).Error
	if errors.Is(err, ErrResourceNotFound) {
		return config, ErrNoBudgetConfig
	}
	return config, err
}

// CommitConfig makes the given split the current configuration.
//
// The previous configuration is superseded, never deleted. The
// snapshot for the month containing now is created or, if it already
// exists, replaced in place. The payday check timestamp advances on
// initial setup and when the commit happens on the payday itself, so
// that a payday-triggered reconfiguration closes its own event.
func CommitConfig(split BudgetSplit, now time.Time) (BudgetConfig, error) {
	if err := split.Validate(); err != nil {
		return BudgetConfig{}, err
	}

	var initial bool
	config := BudgetConfig{BudgetSplit: split, Current: true}

	err := DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&BudgetConfig{}).Where("current = ?", true).Count(&count).Error; err != nil {
			return err
		}
		initial = count == 0

		// UpdateColumn skips the validation hooks, which would otherwise
		// run against the zero model and reject the supersede write
		if err := tx.Model(&BudgetConfig{}).Where("current = ?", true).UpdateColumn("current", false).Error; err != nil {
			return err
		}

		if err := tx.Create(&config).Error; err != nil {
			return err
		}

		if err := upsertMonthlyBudget(tx, types.MonthOf(now), split); err != nil {
			return err
		}

		if initial || now.Day() == split.Payday {
			if err := setLastPaydayCheck(tx, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return BudgetConfig{}, err
	}

	return config, nil
}

// Returns the current budget configuration for export, or JSON null
// when setup has not been completed.
func (BudgetConfig) Export() (json.RawMessage, error) {
	var config *BudgetConfig

	err := DB.First(&config, "current = ?", true).Error
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		config = nil
	} else if err != nil {
		return nil, err
	}

	j, err := json.Marshal(config)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
