package ledger

import (
	"errors"
)

var (
	ErrResourceNotFound = errors.New("there is no transaction matching your query")

	ErrAmountNotPositive    = errors.New("the amount must be larger than zero")
	ErrDateNotSet           = errors.New("the date must be set")
	ErrDescriptionEmpty     = errors.New("the description must not be empty")
	ErrTypeInvalid          = errors.New("the transaction type must be income or expense")
	ErrCategoryUnknown      = errors.New("the category does not exist")
	ErrCategoryTypeMismatch = errors.New("the category cannot be used for this transaction type")
	ErrCategoryNotExpense   = errors.New("budget limits can only be set for expense categories")
	ErrLimitNegative        = errors.New("budget limits must not be negative")
)
