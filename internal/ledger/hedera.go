package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashgraph/hedera-sdk-go/v2"
)

// Config identifies the operator identity and target network for the
// process-wide Hedera client.
type Config struct {
	OperatorID  string
	OperatorKey string
	Network     string
}

// HederaGateway implements Gateway on top of the Hedera SDK. It holds one
// client handle constructed at startup; handlers never mutate it.
type HederaGateway struct {
	client *hedera.Client
}

// New builds the gateway from operator credentials. The client starts from a
// static seed node map, so construction performs no network I/O; the SDK
// refreshes the address book in the background once operations run.
func New(cfg Config) (*HederaGateway, error) {
	seeds, err := networkSeeds(cfg.Network)
	if err != nil {
		return nil, err
	}
	client := hedera.ClientForNetwork(seeds.nodes)
	client.SetLedgerID(*seeds.ledgerID)
	client.SetMirrorNetwork([]string{seeds.mirror})

	operatorID, err := hedera.AccountIDFromString(cfg.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("parse operator account ID: %w", err)
	}
	operatorKey, err := hedera.PrivateKeyFromString(cfg.OperatorKey)
	if err != nil {
		return nil, fmt.Errorf("parse operator private key: %w", err)
	}
	client.SetOperator(operatorID, operatorKey)

	return &HederaGateway{client: client}, nil
}

type networkProfile struct {
	nodes    map[string]hedera.AccountID
	mirror   string
	ledgerID *hedera.LedgerID
}

// networkSeeds maps a network name to its well-known consensus seed nodes and
// mirror endpoint. The seeds only bootstrap routing; the client learns the
// full address book from the mirror node after the first call.
func networkSeeds(name string) (networkProfile, error) {
	switch strings.ToLower(name) {
	case "mainnet":
		return networkProfile{
			nodes: map[string]hedera.AccountID{
				"35.237.200.180:50211": {Account: 3},
				"35.186.191.247:50211": {Account: 4},
				"35.192.2.25:50211":    {Account: 5},
				"35.199.161.108:50211": {Account: 6},
			},
			mirror:   "mainnet-public.mirrornode.hedera.com:443",
			ledgerID: hedera.NewLedgerIDMainnet(),
		}, nil
	case "testnet":
		return networkProfile{
			nodes: map[string]hedera.AccountID{
				"0.testnet.hedera.com:50211": {Account: 3},
				"1.testnet.hedera.com:50211": {Account: 4},
				"2.testnet.hedera.com:50211": {Account: 5},
				"3.testnet.hedera.com:50211": {Account: 6},
			},
			mirror:   "testnet.mirrornode.hedera.com:443",
			ledgerID: hedera.NewLedgerIDTestnet(),
		}, nil
	case "previewnet":
		return networkProfile{
			nodes: map[string]hedera.AccountID{
				"0.previewnet.hedera.com:50211": {Account: 3},
				"1.previewnet.hedera.com:50211": {Account: 4},
				"2.previewnet.hedera.com:50211": {Account: 5},
				"3.previewnet.hedera.com:50211": {Account: 6},
			},
			mirror:   "previewnet.mirrornode.hedera.com:443",
			ledgerID: hedera.NewLedgerIDPreviewnet(),
		}, nil
	default:
		return networkProfile{}, fmt.Errorf("unknown ledger network %q", name)
	}
}

func (g *HederaGateway) CreateAccount(ctx context.Context, initialTinybar int64) (Wallet, error) {
	return run(ctx, func() (Wallet, error) {
		key, err := hedera.PrivateKeyGenerateEcdsa()
		if err != nil {
			return Wallet{}, fmt.Errorf("generate account key: %w", err)
		}
		evmAddress := key.PublicKey().ToEvmAddress()

		resp, err := hedera.NewAccountCreateTransaction().
			SetKey(key.PublicKey()).
			SetInitialBalance(hedera.HbarFromTinybar(initialTinybar)).
			SetAlias(evmAddress).
			Execute(g.client)
		if err != nil {
			return Wallet{}, gatewayErr("create account", err)
		}

		receipt, err := resp.GetReceipt(g.client)
		if err != nil {
			return Wallet{}, gatewayErr("create account receipt", err)
		}
		if receipt.AccountID == nil {
			return Wallet{}, fmt.Errorf("%w: create account: receipt carries no account ID", ErrGateway)
		}

		return Wallet{
			AccountID:  receipt.AccountID.String(),
			EvmAddress: evmAddress,
			PrivateKey: key.String(),
		}, nil
	})
}

func (g *HederaGateway) Balance(ctx context.Context, accountID string) (int64, error) {
	id, err := hedera.AccountIDFromString(accountID)
	if err != nil {
		return 0, gatewayErr(fmt.Sprintf("parse account ID %q", accountID), err)
	}

	return run(ctx, func() (int64, error) {
		balance, err := hedera.NewAccountBalanceQuery().
			SetAccountID(id).
			Execute(g.client)
		if err != nil {
			return 0, gatewayErr(fmt.Sprintf("query balance of %s", accountID), err)
		}
		return balance.Hbars.AsTinybar(), nil
	})
}

func (g *HederaGateway) BuildTransfer(ctx context.Context, senderID, recipientID string, amountTinybar int64) ([]byte, error) {
	sender, err := hedera.AccountIDFromString(senderID)
	if err != nil {
		return nil, gatewayErr(fmt.Sprintf("parse sender account ID %q", senderID), err)
	}
	recipient, err := hedera.AccountIDFromString(recipientID)
	if err != nil {
		return nil, gatewayErr(fmt.Sprintf("parse recipient account ID %q", recipientID), err)
	}

	return run(ctx, func() ([]byte, error) {
		// Debit and credit legs carry the same magnitude so the transfer
		// sums to zero; the freeze binds node accounts and a transaction ID
		// but appends no signature.
		frozen, err := hedera.NewTransferTransaction().
			AddHbarTransfer(sender, hedera.HbarFromTinybar(-amountTinybar)).
			AddHbarTransfer(recipient, hedera.HbarFromTinybar(amountTinybar)).
			FreezeWith(g.client)
		if err != nil {
			return nil, gatewayErr("freeze transfer", err)
		}

		raw, err := frozen.ToBytes()
		if err != nil {
			return nil, gatewayErr("serialize frozen transfer", err)
		}
		return raw, nil
	})
}

func (g *HederaGateway) SubmitTransfer(ctx context.Context, signed []byte) (Submission, error) {
	decoded, err := hedera.TransactionFromBytes(signed)
	if err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	transfer, ok := decoded.(hedera.TransferTransaction)
	if !ok {
		return Submission{}, fmt.Errorf("%w: bytes decode to %T, not a transfer", ErrDecode, decoded)
	}

	return run(ctx, func() (Submission, error) {
		resp, err := transfer.Execute(g.client)
		if err != nil {
			return Submission{}, gatewayErr("submit transfer", err)
		}

		receipt, err := resp.GetReceipt(g.client)
		if err != nil {
			return Submission{}, gatewayErr("transfer receipt", err)
		}

		return Submission{
			Status:        receipt.Status.String(),
			TransactionID: resp.TransactionID.String(),
		}, nil
	})
}

func gatewayErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrGateway, op, err)
}

// run executes one gateway call under the caller's context. When the context
// ends first the call is abandoned; the SDK finishes it in the background
// under its own network deadlines.
func run[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := fn()
		done <- outcome{value: value, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
