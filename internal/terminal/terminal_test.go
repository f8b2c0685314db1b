package terminal

import (
	"bytes"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryzlabs/wallet-tracker/internal/logging"
)

// runSession feeds the scripted input lines to a fresh terminal and returns
// everything it printed.
func runSession(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	term := New(strings.NewReader(script), &out, logging.Discard())
	require.NoError(t, term.Run())
	return out.String()
}

func TestSessionDepositAndBalance(t *testing.T) {
	out := runSession(t, "2\nwallet_1\n100\n1\nwallet_1\n5\n")

	assert.Contains(t, out, "Welcome to Wallet Tracker Terminal!")
	assert.Contains(t, out, "Successfully deposited 100 to the wallet")
	assert.Contains(t, out, "Balance for wallet wallet_1: 100")
	assert.Contains(t, out, "Thank you for using Wallet Tracker Terminal!")
}

func TestSessionWithdraw(t *testing.T) {
	out := runSession(t, "2\nwallet_1\n100\n3\nwallet_1\n30\n1\nwallet_1\n5\n")

	assert.Contains(t, out, "Successfully withdrew 30 from the wallet")
	assert.Contains(t, out, "Balance for wallet wallet_1: 70")
}

func TestSessionInsufficientFunds(t *testing.T) {
	out := runSession(t, "2\nwallet_1\n50\n3\nwallet_1\n100\n5\n")

	assert.Contains(t, out, "Insufficient funds. Available balance: 50")
	assert.NotContains(t, out, "Successfully withdrew")
}

func TestSessionBalanceForUnknownWallet(t *testing.T) {
	out := runSession(t, "1\nnobody\n5\n")

	assert.Contains(t, out, "Balance for wallet nobody: 0")
}

func TestSessionInvalidMenuChoice(t *testing.T) {
	out := runSession(t, "9\n5\n")

	assert.Contains(t, out, "Invalid choice. Please try again.")
}

// Non-numeric amounts are normalized to zero, which the positive-amount
// check then rejects; the session must keep running afterwards.
func TestSessionLenientAmountParsing(t *testing.T) {
	out := runSession(t, "2\nwallet_1\nabc\n1\nwallet_1\n5\n")

	assert.Contains(t, out, "Invalid amount. Please enter a valid number.")
	assert.Contains(t, out, "Amount must be positive")
	assert.Contains(t, out, "Balance for wallet wallet_1: 0")
}

func TestSessionRejectsNegativeAmount(t *testing.T) {
	out := runSession(t, "3\nwallet_1\n-25\n5\n")

	assert.Contains(t, out, "Amount must be positive")
	assert.NotContains(t, out, "Successfully withdrew")
}

func TestSessionHistoryOutput(t *testing.T) {
	out := runSession(t, "2\nwallet_1\n100\n3\nwallet_1\n30\n4\nwallet_1\n5\n")

	assert.Contains(t, out, "Transaction history for wallet wallet_1:")
	assert.Contains(t, out, "Deposit of 100 to wallet_1 | Running balance: 100")
	assert.Contains(t, out, "Withdrawal of 30 to wallet_1 | Running balance: 70")
}

func TestSessionHistoryIgnoresOtherWallets(t *testing.T) {
	out := runSession(t, "2\nwallet_1\n100\n2\nwallet_2\n200\n4\nwallet_1\n5\n")

	assert.Contains(t, out, "Deposit of 100 to wallet_1 | Running balance: 100")
	assert.NotContains(t, out, "wallet_2 | Running balance")
}

func TestSessionEndsOnEOF(t *testing.T) {
	out := runSession(t, "")

	assert.Contains(t, out, "Thank you for using Wallet Tracker Terminal!")
}

func TestSessionEventsCarrySessionID(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	var out bytes.Buffer
	term := New(strings.NewReader("5\n"), &out, logger)
	require.NoError(t, term.Run())

	require.NotEmpty(t, hook.Entries)
	for _, entry := range hook.Entries {
		assert.NotEmpty(t, entry.Data["session_id"])
	}
}
