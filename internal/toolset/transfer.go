package toolset

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/hashbridge/hedera-mcp/internal/ledger"
)

func (r *Registry) buildTransactionTool() Tool {
	return Tool{
		Name:        ToolBuildTransaction,
		Description: "Build and freeze an unsigned two-leg tinybar transfer. The sender is debited and the recipient credited by the same amount. Returns the frozen transaction as base64; sign it locally and submit with send-transaction.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"senderAccountId": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"recipientAccountId": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"amount": map[string]any{
					"type": "integer",
				},
			},
			"required":             []any{"senderAccountId", "recipientAccountId", "amount"},
			"additionalProperties": false,
		},
		Handler: r.executeBuildTransaction,
	}
}

func (r *Registry) executeBuildTransaction(ctx context.Context, arguments map[string]any) (string, error) {
	senderID, err := stringArgument(arguments, "senderAccountId")
	if err != nil {
		return "", err
	}
	recipientID, err := stringArgument(arguments, "recipientAccountId")
	if err != nil {
		return "", err
	}
	amount, err := int64Argument(arguments, "amount")
	if err != nil {
		return "", err
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be > 0 tinybar, got %d", ErrInvalidArguments, amount)
	}

	frozen, err := r.gateway.BuildTransfer(ctx, senderID, recipientID, amount)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(frozen), nil
}

type submissionResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

func (r *Registry) sendTransactionTool() Tool {
	return Tool{
		Name:        ToolSendTransaction,
		Description: "Submit a signed transfer to the ledger and wait for the finality receipt. Takes the base64 transaction produced by build-transaction after signing.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"signedTransaction": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"required":             []any{"signedTransaction"},
			"additionalProperties": false,
		},
		Handler: r.executeSendTransaction,
	}
}

func (r *Registry) executeSendTransaction(ctx context.Context, arguments map[string]any) (string, error) {
	encoded, err := stringArgument(arguments, "signedTransaction")
	if err != nil {
		return "", err
	}

	signed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: signedTransaction is not valid base64: %v", ledger.ErrDecode, err)
	}

	submission, err := r.gateway.SubmitTransfer(ctx, signed)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(submissionResult{
		Status:        submission.Status,
		TransactionID: submission.TransactionID,
	})
	if err != nil {
		return "", fmt.Errorf("encode submission result: %w", err)
	}
	return string(out), nil
}
