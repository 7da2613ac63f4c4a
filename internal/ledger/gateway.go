package ledger

import (
	"context"
	"errors"
)

var (
	// ErrGateway marks any failure reported by the ledger network: consensus
	// rejection, unknown account, bad signature, or plain connectivity. The
	// upstream message is preserved verbatim in the wrapped error.
	ErrGateway = errors.New("ledger gateway failure")
	// ErrDecode marks transaction bytes that could not be reconstructed into
	// a submittable transfer.
	ErrDecode = errors.New("transaction bytes are malformed")
	// ErrTimeout marks a gateway call that exceeded its per-call deadline.
	ErrTimeout = errors.New("ledger gateway call timed out")
)

// Wallet is the material returned by account creation. The private key is
// generated locally, handed back to the caller, and never retained.
type Wallet struct {
	AccountID  string
	EvmAddress string
	PrivateKey string
}

// Submission is the terminal outcome of a signed-transfer submission.
type Submission struct {
	Status        string
	TransactionID string
}

// Gateway performs all ledger-network operations. Implementations must be
// safe for concurrent use from independent tool invocations.
type Gateway interface {
	// CreateAccount generates a fresh keypair, creates an on-ledger account
	// funded with initialTinybar, and returns the account identity together
	// with the key material.
	CreateAccount(ctx context.Context, initialTinybar int64) (Wallet, error)

	// Balance returns the account balance in tinybar. An unknown account is
	// a gateway failure, never a zero balance.
	Balance(ctx context.Context, accountID string) (int64, error)

	// BuildTransfer constructs a balanced two-leg transfer (debit sender,
	// credit recipient, legs summing to zero), freezes it against the
	// current node set without signing, and returns the frozen bytes.
	BuildTransfer(ctx context.Context, senderID, recipientID string, amountTinybar int64) ([]byte, error)

	// SubmitTransfer reconstructs a signed transfer from bytes, submits it,
	// and waits for the finality receipt.
	SubmitTransfer(ctx context.Context, signed []byte) (Submission, error)
}
