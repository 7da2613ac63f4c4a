package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = 3000
	defaultNetwork         = NetworkTestnet
	defaultShutdownTimeout = 5 * time.Second
	defaultToolTimeout     = 30 * time.Second
	defaultLogFormat       = LogFormatText
	defaultLogLevel        = slog.LevelInfo
)

type Network string

const (
	NetworkTestnet    Network = "testnet"
	NetworkMainnet    Network = "mainnet"
	NetworkPreviewnet Network = "previewnet"
)

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config controls the ledger client, HTTP boot, and shutdown behavior.
type Config struct {
	OperatorID       string
	OperatorKey      string
	Network          Network
	Port             int
	ShutdownTimeout  time.Duration
	ToolTimeout      time.Duration
	LogFormat        LogFormat
	LogLevel         slog.Level
	RedactWalletKeys bool
}

// Load reads runtime configuration from environment variables. Missing
// operator credentials are a configuration error; the caller must treat it
// as fatal before binding any listener.
func Load() (Config, error) {
	cfg := Default()

	cfg.OperatorID = strings.TrimSpace(os.Getenv("HEDERA_OPERATOR_ID"))
	cfg.OperatorKey = strings.TrimSpace(os.Getenv("HEDERA_OPERATOR_KEY"))

	if network := strings.TrimSpace(os.Getenv("HEDERA_NETWORK")); network != "" {
		cfg.Network = Network(strings.ToLower(network))
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Port = parsed
	}
	if timeout := strings.TrimSpace(os.Getenv("HEDERA_MCP_SHUTDOWN_TIMEOUT")); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse HEDERA_MCP_SHUTDOWN_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("parse HEDERA_MCP_SHUTDOWN_TIMEOUT: value must be > 0")
		}
		cfg.ShutdownTimeout = parsed
	}
	if timeout := strings.TrimSpace(os.Getenv("HEDERA_MCP_TOOL_TIMEOUT")); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse HEDERA_MCP_TOOL_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("parse HEDERA_MCP_TOOL_TIMEOUT: value must be > 0")
		}
		cfg.ToolTimeout = parsed
	}
	if level := strings.TrimSpace(os.Getenv("HEDERA_MCP_LOG_LEVEL")); level != "" {
		parsed, err := parseLogLevel(level)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = parsed
	}
	if format := strings.TrimSpace(os.Getenv("HEDERA_MCP_LOG_FORMAT")); format != "" {
		parsed, err := parseLogFormat(format)
		if err != nil {
			return Config{}, err
		}
		cfg.LogFormat = parsed
	}
	if redact := strings.TrimSpace(os.Getenv("HEDERA_MCP_REDACT_WALLET_KEYS")); redact != "" {
		parsed, err := strconv.ParseBool(redact)
		if err != nil {
			return Config{}, fmt.Errorf("parse HEDERA_MCP_REDACT_WALLET_KEYS: %w", err)
		}
		cfg.RedactWalletKeys = parsed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Default() Config {
	return Config{
		Network:         defaultNetwork,
		Port:            defaultPort,
		ShutdownTimeout: defaultShutdownTimeout,
		ToolTimeout:     defaultToolTimeout,
		LogFormat:       defaultLogFormat,
		LogLevel:        defaultLogLevel,
	}
}

// HTTPAddr is the listen address derived from the configured port.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.OperatorID) == "" {
		return errors.New("validate config: HEDERA_OPERATOR_ID is required")
	}
	if strings.TrimSpace(c.OperatorKey) == "" {
		return errors.New("validate config: HEDERA_OPERATOR_KEY is required")
	}

	switch c.Network {
	case NetworkTestnet, NetworkMainnet, NetworkPreviewnet:
	default:
		return fmt.Errorf(
			"validate config: unsupported HEDERA_NETWORK %q (allowed: %q, %q, %q)",
			c.Network,
			NetworkTestnet,
			NetworkMainnet,
			NetworkPreviewnet,
		)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("validate config: PORT must be in 1..65535, got %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("validate config: shutdown timeout must be > 0")
	}
	if c.ToolTimeout <= 0 {
		return errors.New("validate config: tool timeout must be > 0")
	}

	switch c.LogLevel {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
	default:
		return fmt.Errorf("validate config: unsupported log level %q", c.LogLevel.String())
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf(
			"validate config: unsupported HEDERA_MCP_LOG_FORMAT %q (allowed: %q, %q)",
			c.LogFormat,
			LogFormatText,
			LogFormatJSON,
		)
	}

	return nil
}

func parseLogLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf(
			"parse HEDERA_MCP_LOG_LEVEL: unsupported value %q (allowed: %q, %q, %q, %q)",
			input,
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		)
	}
}

func parseLogFormat(input string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(LogFormatText):
		return LogFormatText, nil
	case string(LogFormatJSON):
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf(
			"parse HEDERA_MCP_LOG_FORMAT: unsupported value %q (allowed: %q, %q)",
			input,
			LogFormatText,
			LogFormatJSON,
		)
	}
}
