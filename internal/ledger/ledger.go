// Package ledger implements the session ledger core: an insertion-ordered
// transaction sequence, a validating balance fold over it, and an unvalidated
// running-balance history for display.
//
// The sequence itself ([]Transaction) is owned by the caller. Both entry
// points borrow it read-only, so the caller is free to keep appending
// between queries.
package ledger

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"
)

// Balance replays the wallet's transactions in insertion order and returns
// the net balance. Records for other wallets are skipped; an empty matching
// subsequence yields 0 with no error.
//
// Validation short-circuits on the first violation: a negative stored amount
// returns *InvalidAmountError, and a withdrawal exceeding the running balance
// accumulated so far returns *InsufficientFundsError. The check is
// point-in-time against the fold state, so a later deposit never validates an
// earlier withdrawal. Zero amounts are valid.
//
// Each processed record is reported to log at info level, each violation at
// error level, and the final balance at info level. A nil log disables
// reporting; the result is unaffected either way.
func Balance(txs []Transaction, walletID string, log logrus.FieldLogger) (int64, error) {
	if log == nil {
		log = discardLogger
	}

	var balance int64
	for _, tx := range txs {
		if tx.WalletID != walletID {
			continue
		}

		if tx.Amount < 0 {
			log.Errorf("invalid transaction amount %d in %s", tx.Amount, tx)
			return 0, &InvalidAmountError{Amount: tx.Amount}
		}

		switch tx.Kind {
		case Deposit:
			balance += tx.Amount
			log.Infof("deposit of %d to %s", tx.Amount, tx.WalletID)
		case Withdrawal:
			if balance < tx.Amount {
				log.Errorf("insufficient funds for withdrawal of %d from %s: available balance %d", tx.Amount, tx.WalletID, balance)
				return 0, &InsufficientFundsError{Requested: tx.Amount, Available: balance}
			}
			balance -= tx.Amount
			log.Infof("withdrawal of %d from %s", tx.Amount, tx.WalletID)
		}
	}

	log.Infof("final balance for wallet %s: %d", walletID, balance)
	return balance, nil
}

// History yields the wallet's transactions in insertion order, each paired
// with the running balance after applying it. The sequence is finite and
// restartable; ranging over it again replays from the start.
//
// Unlike Balance, History performs no validation: deposits add and
// withdrawals subtract unconditionally, so the running total can go negative
// and can include amounts Balance would reject. History is best-effort
// display output, Balance is authoritative; keep the two paths distinct.
func History(txs []Transaction, walletID string) iter.Seq2[Transaction, int64] {
	return func(yield func(Transaction, int64) bool) {
		var balance int64
		for _, tx := range txs {
			if tx.WalletID != walletID {
				continue
			}
			switch tx.Kind {
			case Deposit:
				balance += tx.Amount
			case Withdrawal:
				balance -= tx.Amount
			}
			if !yield(tx, balance) {
				return
			}
		}
	}
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
