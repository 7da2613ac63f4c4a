package toolset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashbridge/hedera-mcp/internal/ledger"
)

const (
	ToolCreateWallet     = "create-wallet"
	ToolCheckBalance     = "check-balance"
	ToolBuildTransaction = "build-transaction"
	ToolSendTransaction  = "send-transaction"

	// Minimal funding granted to freshly created accounts, in tinybar.
	WalletFundingTinybar = 100

	DefaultToolTimeout = 30 * time.Second
)

var (
	ErrToolUnregistered = errors.New("tool is not registered")
	ErrInvalidArguments = errors.New("tool arguments are invalid")
	ErrHandlerNil       = errors.New("tool handler is nil")
)

// Handler executes one tool call using schema-validated arguments and
// returns the single text payload of the result.
type Handler func(ctx context.Context, arguments map[string]any) (string, error)

// Tool is a named remote-invokable operation with a fixed input contract.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Handler     Handler
}

// Options tune registry behavior beyond the gateway handle itself.
type Options struct {
	// ToolTimeout bounds each gateway-backed invocation. Zero means
	// DefaultToolTimeout.
	ToolTimeout time.Duration
	// RedactWalletKeys replaces the private key in create-wallet results.
	// The default (false) preserves the documented result contract.
	RedactWalletKeys bool
}

// Registry holds the fixed tool set and dispatches calls by exact name.
type Registry struct {
	gateway ledger.Gateway
	tools   map[string]Tool
	order   []string
	timeout time.Duration
	redact  bool
}

func NewRegistry(gateway ledger.Gateway, opts Options) (*Registry, error) {
	if gateway == nil {
		return nil, errors.New("new registry: nil gateway")
	}
	timeout := opts.ToolTimeout
	if timeout == 0 {
		timeout = DefaultToolTimeout
	}
	if timeout < 0 {
		return nil, fmt.Errorf("new registry: tool timeout must be > 0, got %s", timeout)
	}

	r := &Registry{
		gateway: gateway,
		tools:   make(map[string]Tool),
		timeout: timeout,
		redact:  opts.RedactWalletKeys,
	}
	for _, tool := range []Tool{
		r.createWalletTool(),
		r.checkBalanceTool(),
		r.buildTransactionTool(),
		r.sendTransactionTool(),
	} {
		r.tools[tool.Name] = tool
		r.order = append(r.order, tool.Name)
	}
	return r, nil
}

// Tools returns the registered definitions in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Execute validates arguments against the tool's input schema, then invokes
// the handler under the per-call timeout. Validation failures never reach
// the handler body.
func (r *Registry) Execute(ctx context.Context, name string, arguments map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrToolUnregistered, name)
	}
	if tool.Handler == nil {
		return "", fmt.Errorf("%w: %q", ErrHandlerNil, name)
	}

	if err := validateArguments(tool.InputSchema, arguments); err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrInvalidArguments, name, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	content, err := tool.Handler(callCtx, arguments)
	if err != nil {
		// Only a deadline error from the handler itself becomes a timeout;
		// other failures keep their upstream message even when the clock has
		// also run out.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("%w: %s after %s", ledger.ErrTimeout, name, r.timeout)
		}
		return "", err
	}
	return content, nil
}
