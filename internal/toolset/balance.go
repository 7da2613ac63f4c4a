package toolset

import (
	"context"
	"fmt"
)

func (r *Registry) checkBalanceTool() Tool {
	return Tool{
		Name:        ToolCheckBalance,
		Description: "Query the tinybar balance of a ledger account.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"accountId": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"required":             []any{"accountId"},
			"additionalProperties": false,
		},
		Handler: r.executeCheckBalance,
	}
}

func (r *Registry) executeCheckBalance(ctx context.Context, arguments map[string]any) (string, error) {
	accountID, err := stringArgument(arguments, "accountId")
	if err != nil {
		return "", err
	}

	balance, err := r.gateway.Balance(ctx, accountID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Balance for account %s: %d tinybar", accountID, balance), nil
}
