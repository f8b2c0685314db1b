package ledger

import "fmt"

// InvalidAmountError reports a stored transaction carrying a negative amount.
// The shell rejects non-positive amounts before appending, so seeing one on
// read means the sequence was corrupted upstream.
type InvalidAmountError struct {
	Amount int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid transaction amount: %d", e.Amount)
}

// InsufficientFundsError reports a withdrawal exceeding the funds accumulated
// up to that point in replay order. Available is the running balance just
// before the failing withdrawal was applied.
type InsufficientFundsError struct {
	Requested int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for withdrawal of %d: available balance %d", e.Requested, e.Available)
}
