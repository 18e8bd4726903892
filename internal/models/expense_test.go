package models_test

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseMemoDefault() {
	expense := suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(12000),
	})

	suite.Assert().Equal("지출", expense.Memo)

	expense = suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(12000),
		Memo:   "   ",
	})

	suite.Assert().Equal("지출", expense.Memo)
}

func (suite *TestSuiteStandard) TestExpenseMemoTrimmed() {
	expense := suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(8000),
		Memo:   "  점심  ",
	})

	suite.Assert().Equal("점심", expense.Memo)
}

func (suite *TestSuiteStandard) TestExpenseAmountValidation() {
	err := models.DB.Create(&models.Expense{
		Amount:   decimal.Zero,
		Category: budget.CategoryFlexible,
		Date:     time.Now(),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive)

	err = models.DB.Create(&models.Expense{
		Amount:   decimal.NewFromInt(-500),
		Category: budget.CategoryFlexible,
		Date:     time.Now(),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive)

	// The rejected rows must not be persisted
	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestExpenseCategoryValidation() {
	err := models.DB.Create(&models.Expense{
		Amount:   decimal.NewFromInt(500),
		Category: budget.Category("luxury"),
		Date:     time.Now(),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseCategoryInvalid)

	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

// A partial update must be validated against the merged row, not only
// the changed fields.
func (suite *TestSuiteStandard) TestExpenseUpdateValidation() {
	expense := suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(10000),
	})

	err := models.DB.Model(&expense).Select("", "Category").Updates(models.Expense{Category: "luxury"}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseCategoryInvalid)

	var reloaded models.Expense
	suite.Assert().Nil(models.DB.First(&reloaded, expense.ID).Error)
	suite.Assert().Equal(budget.CategoryFlexible, reloaded.Category)
}

func (suite *TestSuiteStandard) TestEntries() {
	suite.createTestExpense(models.Expense{
		Amount:   decimal.NewFromInt(10000),
		Category: budget.CategoryEssential,
		Date:     time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestExpense(models.Expense{
		Amount:   decimal.NewFromInt(20000),
		Category: budget.CategoryFlexible,
		Date:     time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
	})

	entries, err := models.Entries()
	suite.Assert().Nil(err)
	suite.Require().Len(entries, 2)
}
