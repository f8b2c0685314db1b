// Package terminal implements the interactive session shell: a numbered menu
// loop that reads wallet ids and amounts from the user, appends accepted
// transactions to the in-memory session ledger, and renders balances and
// history computed by the ledger core.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ryzlabs/wallet-tracker/internal/ledger"
	"github.com/ryzlabs/wallet-tracker/internal/logging"
)

// Terminal drives one interactive wallet session. It exclusively owns the
// transaction sequence for the session lifetime; the ledger core only ever
// borrows it read-only, and only the terminal appends to it.
type Terminal struct {
	transactions []ledger.Transaction
	in           *bufio.Scanner
	out          io.Writer
	log          logrus.FieldLogger
}

// New builds a terminal reading user input from in and writing prompts and
// results to out. Session events are written to log, tagged with a fresh
// session id. A nil log disables session logging.
func New(in io.Reader, out io.Writer, log logrus.FieldLogger) *Terminal {
	if log == nil {
		log = logging.Discard()
	}
	return &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
		log: log.WithField("session_id", uuid.NewString()),
	}
}

// Run starts the interactive session and blocks until the user exits, the
// input stream ends, or reading input fails.
func (t *Terminal) Run() error {
	t.log.Info("starting wallet terminal session")
	fmt.Fprintln(t.out, "Welcome to Wallet Tracker Terminal!")

	for {
		exit, err := t.showMenu()
		if err != nil {
			return err
		}
		if exit {
			break
		}
	}

	t.log.Info("terminating wallet terminal session")
	fmt.Fprintln(t.out, "Thank you for using Wallet Tracker Terminal!")
	return nil
}

// showMenu prints the menu, reads one choice and dispatches it. It reports
// whether the session should end.
func (t *Terminal) showMenu() (bool, error) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, "Please select an option:")
	fmt.Fprintln(t.out, "1. Check Balance")
	fmt.Fprintln(t.out, "2. Deposit")
	fmt.Fprintln(t.out, "3. Withdraw")
	fmt.Fprintln(t.out, "4. View Transaction History")
	fmt.Fprintln(t.out, "5. Exit")
	fmt.Fprint(t.out, "\nEnter your choice (1-5): ")

	choice, ok := t.readLine()
	if !ok {
		// end of input counts as exiting the session
		return true, t.in.Err()
	}

	switch choice {
	case "1":
		t.log.Info("selected: check balance")
		t.checkBalance()
	case "2":
		t.log.Info("selected: deposit")
		t.deposit()
	case "3":
		t.log.Info("selected: withdraw")
		t.withdraw()
	case "4":
		t.log.Info("selected: view history")
		t.viewHistory()
	case "5":
		t.log.Info("selected: exit")
		return true, nil
	default:
		t.log.Errorf("invalid menu choice entered: %s", choice)
		fmt.Fprintln(t.out, "Invalid choice. Please try again.")
	}

	return false, nil
}

func (t *Terminal) checkBalance() {
	walletID, ok := t.promptWalletID()
	if !ok {
		return
	}

	balance, err := ledger.Balance(t.transactions, walletID, t.log)
	if err != nil {
		t.log.Errorf("balance check failed for %s: %v", walletID, err)
		fmt.Fprintf(t.out, "Error checking balance: %v\n", err)
		return
	}

	t.log.Infof("balance check successful for %s: %d", walletID, balance)
	fmt.Fprintf(t.out, "Balance for wallet %s: %d\n", walletID, balance)
}

func (t *Terminal) deposit() {
	walletID, ok := t.promptWalletID()
	if !ok {
		return
	}
	amount, ok := t.promptAmount()
	if !ok {
		return
	}

	if amount <= 0 {
		t.log.Errorf("invalid deposit amount attempted: %d", amount)
		fmt.Fprintln(t.out, "Amount must be positive")
		return
	}

	t.transactions = append(t.transactions, ledger.Transaction{
		Kind:     ledger.Deposit,
		WalletID: walletID,
		Amount:   amount,
	})
	t.log.Infof("successful deposit of %d to wallet %s", amount, walletID)
	fmt.Fprintf(t.out, "Successfully deposited %d to the wallet\n", amount)
}

func (t *Terminal) withdraw() {
	walletID, ok := t.promptWalletID()
	if !ok {
		return
	}
	amount, ok := t.promptAmount()
	if !ok {
		return
	}

	if amount <= 0 {
		t.log.Errorf("invalid withdrawal amount attempted: %d", amount)
		fmt.Fprintln(t.out, "Amount must be positive")
		return
	}

	balance, err := ledger.Balance(t.transactions, walletID, t.log)
	if err != nil {
		t.log.Errorf("withdrawal error for wallet %s: %v", walletID, err)
		fmt.Fprintf(t.out, "Error: %v\n", err)
		return
	}
	if balance < amount {
		t.log.Errorf("insufficient funds for withdrawal: requested %d, available %d", amount, balance)
		fmt.Fprintf(t.out, "Insufficient funds. Available balance: %d\n", balance)
		return
	}

	t.transactions = append(t.transactions, ledger.Transaction{
		Kind:     ledger.Withdrawal,
		WalletID: walletID,
		Amount:   amount,
	})
	t.log.Infof("successful withdrawal of %d from wallet %s", amount, walletID)
	fmt.Fprintf(t.out, "Successfully withdrew %d from the wallet\n", amount)
}

func (t *Terminal) viewHistory() {
	walletID, ok := t.promptWalletID()
	if !ok {
		return
	}

	t.log.Infof("viewing transaction history for wallet %s", walletID)
	fmt.Fprintf(t.out, "Transaction history for wallet %s:\n", walletID)
	for tx, running := range ledger.History(t.transactions, walletID) {
		fmt.Fprintf(t.out, "%s | Running balance: %d\n", tx, running)
	}
}

func (t *Terminal) promptWalletID() (string, bool) {
	fmt.Fprint(t.out, "Enter wallet address: ")
	walletID, ok := t.readLine()
	if ok {
		t.log.Infof("wallet address entered: %s", walletID)
	}
	return walletID, ok
}

// promptAmount reads an amount from the user. Input that does not parse as an
// integer is normalized to 0 rather than treated as a hard error; the
// positive-amount check in the callers then rejects the zero. This leniency
// is long-standing observable behavior.
func (t *Terminal) promptAmount() (int64, bool) {
	fmt.Fprint(t.out, "Enter amount: ")
	raw, ok := t.readLine()
	if !ok {
		return 0, false
	}

	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		t.log.Errorf("invalid amount entered: %s", raw)
		fmt.Fprintln(t.out, "Invalid amount. Please enter a valid number.")
		return 0, true
	}

	t.log.Infof("amount entered: %d", amount)
	return amount, true
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}
