package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrNoBudgetConfig wraps ErrResourceNotFound so that handlers
	// answer with 404 while setup has not been completed.
	ErrNoBudgetConfig = fmt.Errorf("%w budget configuration, complete the setup first", ErrResourceNotFound)
)

// Validation errors. A command failing one of these is rejected and
// leaves the persisted state unchanged.
var (
	ErrIncomeNegative           = errors.New("the monthly income must not be negative")
	ErrPaydayOutOfRange         = errors.New("the payday must be a day of the month between 1 and 31")
	ErrRatioSumInvalid          = errors.New("the investment, savings and consumption ratios must add up to 100")
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")
	ErrExpenseCategoryInvalid   = errors.New("the expense category must be either 'essential' or 'flexible'")
	ErrThemeInvalid             = errors.New("the theme must be either 'dark' or 'light'")
)
