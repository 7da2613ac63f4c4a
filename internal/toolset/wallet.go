package toolset

import (
	"context"
	"encoding/json"
	"fmt"
)

const redactedKey = "[redacted]"

type walletResult struct {
	AccountID  string `json:"accountId"`
	EvmAddress string `json:"evmAddress"`
	PrivateKey string `json:"privateKey"`
}

func (r *Registry) createWalletTool() Tool {
	return Tool{
		Name:        ToolCreateWallet,
		Description: "Create a new ledger account with a freshly generated ECDSA keypair and a minimal initial balance. Returns the account ID, EVM address, and private key.",
		InputSchema: map[string]any{
			"type":                 "object",
			"properties":           map[string]any{},
			"additionalProperties": false,
		},
		Handler: r.executeCreateWallet,
	}
}

func (r *Registry) executeCreateWallet(ctx context.Context, _ map[string]any) (string, error) {
	wallet, err := r.gateway.CreateAccount(ctx, WalletFundingTinybar)
	if err != nil {
		return "", err
	}

	result := walletResult{
		AccountID:  wallet.AccountID,
		EvmAddress: wallet.EvmAddress,
		PrivateKey: wallet.PrivateKey,
	}
	if r.redact {
		result.PrivateKey = redactedKey
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode wallet result: %w", err)
	}
	return string(encoded), nil
}
