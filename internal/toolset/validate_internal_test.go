package toolset

import (
	"strings"
	"testing"
)

func TestValidateArguments(t *testing.T) {
	t.Parallel()

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"accountId": map[string]any{"type": "string", "minLength": 1},
			"amount":    map[string]any{"type": "integer"},
		},
		"required":             []any{"accountId"},
		"additionalProperties": false,
	}

	tests := []struct {
		name      string
		arguments map[string]any
		wantErr   string
	}{
		{
			name:      "valid",
			arguments: map[string]any{"accountId": "0.0.42", "amount": float64(10)},
		},
		{
			name:      "missing required",
			arguments: map[string]any{"amount": float64(10)},
			wantErr:   `missing required argument "accountId"`,
		},
		{
			name:      "wrong type",
			arguments: map[string]any{"accountId": true},
			wantErr:   `argument "accountId" must be string`,
		},
		{
			name:      "empty string below minLength",
			arguments: map[string]any{"accountId": ""},
			wantErr:   "at least 1 characters",
		},
		{
			name:      "fractional integer",
			arguments: map[string]any{"accountId": "0.0.42", "amount": 1.5},
			wantErr:   `argument "amount" must be integer`,
		},
		{
			name:      "json number accepted as integer",
			arguments: map[string]any{"accountId": "0.0.42", "amount": float64(7)},
		},
		{
			name:      "unknown argument",
			arguments: map[string]any{"accountId": "0.0.42", "memo": "nope"},
			wantErr:   `unknown argument "memo"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateArguments(schema, tt.arguments)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error mismatch: got=%q want substring=%q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateArgumentsEmptySchemaAllowsAnything(t *testing.T) {
	t.Parallel()

	if err := validateArguments(nil, map[string]any{"whatever": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
