package ledger

import "fmt"

// Kind identifies the direction of a transaction. The set is closed:
// deposits add funds to a wallet, withdrawals remove them.
type Kind uint8

const (
	// Deposit represents funds being added to a wallet.
	Deposit Kind = iota + 1
	// Withdrawal represents funds being removed from a wallet.
	Withdrawal
)

// String renders the kind exactly as it appears in transaction listings.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Transaction is a single ledger entry. It is immutable once constructed;
// the session shell builds one per accepted user action and appends it to
// its transaction sequence.
type Transaction struct {
	// Kind is the transaction direction.
	Kind Kind
	// WalletID is an opaque grouping key. Any string is accepted as-is,
	// including the empty string; the ledger never interprets it.
	WalletID string
	// Amount is the number of units moved. The shell only appends positive
	// amounts, but Balance re-validates the sign on every read because it
	// is the authoritative guard.
	Amount int64
}

// String renders the transaction as "<Kind> of <amount> to <wallet_id>".
func (t Transaction) String() string {
	return fmt.Sprintf("%s of %d to %s", t.Kind, t.Amount, t.WalletID)
}
