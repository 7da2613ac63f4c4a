package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashbridge/hedera-mcp/internal/ledger"
)

func testOperatorKey(t *testing.T) hedera.PrivateKey {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("generate operator key: %v", err)
	}
	return key
}

// newTestGateway builds a gateway from the static testnet seeds; construction,
// freezing, and decoding all run without network traffic.
func newTestGateway(t *testing.T) *ledger.HederaGateway {
	t.Helper()
	gateway, err := ledger.New(ledger.Config{
		OperatorID:  "0.0.2",
		OperatorKey: testOperatorKey(t).String(),
		Network:     "testnet",
	})
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	return gateway
}

func TestNewRejectsMalformedOperatorID(t *testing.T) {
	t.Parallel()

	_, err := ledger.New(ledger.Config{
		OperatorID:  "not-an-account",
		OperatorKey: testOperatorKey(t).String(),
		Network:     "testnet",
	})
	if err == nil {
		t.Fatalf("expected error for malformed operator ID")
	}
}

func TestNewRejectsMalformedOperatorKey(t *testing.T) {
	t.Parallel()

	_, err := ledger.New(ledger.Config{
		OperatorID:  "0.0.2",
		OperatorKey: "garbage",
		Network:     "testnet",
	})
	if err == nil {
		t.Fatalf("expected error for malformed operator key")
	}
}

func TestNewRejectsUnknownNetwork(t *testing.T) {
	t.Parallel()

	_, err := ledger.New(ledger.Config{
		OperatorID:  "0.0.2",
		OperatorKey: testOperatorKey(t).String(),
		Network:     "moonnet",
	})
	if err == nil {
		t.Fatalf("expected error for unknown network")
	}
}

func TestBuildTransferProducesBalancedUnsignedTransfer(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t)

	const amount = int64(250)
	frozen, err := gateway.BuildTransfer(context.Background(), "0.0.1001", "0.0.1002", amount)
	if err != nil {
		t.Fatalf("build transfer: %v", err)
	}
	if len(frozen) == 0 {
		t.Fatalf("frozen transfer must not be empty")
	}

	decoded, err := hedera.TransactionFromBytes(frozen)
	if err != nil {
		t.Fatalf("decode frozen bytes: %v", err)
	}
	transfer, ok := decoded.(hedera.TransferTransaction)
	if !ok {
		t.Fatalf("decoded %T, want a transfer transaction", decoded)
	}

	var sum int64
	legs := map[string]int64{}
	for accountID, hbar := range transfer.GetHbarTransfers() {
		legs[accountID.String()] = hbar.AsTinybar()
		sum += hbar.AsTinybar()
	}
	if sum != 0 {
		t.Fatalf("transfer legs must sum to zero, got %d (legs: %v)", sum, legs)
	}
	if legs["0.0.1001"] != -amount {
		t.Fatalf("sender leg mismatch: got=%d want=%d", legs["0.0.1001"], -amount)
	}
	if legs["0.0.1002"] != amount {
		t.Fatalf("recipient leg mismatch: got=%d want=%d", legs["0.0.1002"], amount)
	}
}

func TestBuildTransferRejectsMalformedAccountIDs(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t)

	if _, err := gateway.BuildTransfer(context.Background(), "bogus", "0.0.1002", 10); !errors.Is(err, ledger.ErrGateway) {
		t.Fatalf("expected ErrGateway for malformed sender, got %v", err)
	}
	if _, err := gateway.BuildTransfer(context.Background(), "0.0.1001", "bogus", 10); !errors.Is(err, ledger.ErrGateway) {
		t.Fatalf("expected ErrGateway for malformed recipient, got %v", err)
	}
}

func TestSubmitTransferRejectsGarbageBytes(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t)

	_, err := gateway.SubmitTransfer(context.Background(), []byte("definitely not a transaction"))
	if !errors.Is(err, ledger.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if errors.Is(err, ledger.ErrGateway) {
		t.Fatalf("decode failure must not carry the gateway kind: %v", err)
	}
}

func TestSubmitTransferRejectsNonTransferTransaction(t *testing.T) {
	t.Parallel()

	// A one-node static network is enough to freeze locally.
	client := hedera.ClientForNetwork(map[string]hedera.AccountID{
		"0.testnet.hedera.com:50211": {Account: 3},
	})
	operatorID, err := hedera.AccountIDFromString("0.0.2")
	if err != nil {
		t.Fatalf("parse operator ID: %v", err)
	}
	operatorKey := testOperatorKey(t)
	client.SetOperator(operatorID, operatorKey)

	frozen, err := hedera.NewAccountCreateTransaction().
		SetKey(operatorKey.PublicKey()).
		FreezeWith(client)
	if err != nil {
		t.Fatalf("freeze account create: %v", err)
	}
	raw, err := frozen.ToBytes()
	if err != nil {
		t.Fatalf("serialize account create: %v", err)
	}

	gateway := newTestGateway(t)
	_, submitErr := gateway.SubmitTransfer(context.Background(), raw)
	if !errors.Is(submitErr, ledger.ErrDecode) {
		t.Fatalf("expected ErrDecode for non-transfer bytes, got %v", submitErr)
	}
}

func TestBalanceRejectsMalformedAccountID(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t)

	_, err := gateway.Balance(context.Background(), "bogus")
	if !errors.Is(err, ledger.ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}
