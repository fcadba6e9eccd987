package pocket

import "errors"

// Errors reported by ledger operations. They are all recoverable: the operation that
// returns one has left the ledger unchanged.
var (
	// add
	ErrMalformedInput   = errors.New("malformed record, should be like this: meal breakfast -50")
	ErrInvalidCategory  = errors.New("the specified category is not in the category list")
	ErrNonIntegerAmount = errors.New("invalid value for money, should be an integer")

	// delete
	ErrNotFound         = errors.New("no such record")
	ErrInvalidLineInput = errors.New("invalid line, should be an integer")
	ErrLineNotInSet     = errors.New("invalid line number")

	// find
	ErrUnknownCategory = errors.New("no such category")
	ErrNoRecords       = errors.New("no record in category")

	// persistence
	ErrPersist                = errors.New("cannot save the ledger")
	ErrInvalidStartingBalance = errors.New("invalid value for money, set to 0 by default")
)
