package toolset

import (
	"fmt"
	"math"
	"strings"
)

func stringArgument(arguments map[string]any, key string) (string, error) {
	raw, ok := arguments[key]
	if !ok {
		return "", fmt.Errorf("%w: missing argument %q", ErrInvalidArguments, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %q must be a string", ErrInvalidArguments, key)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: argument %q must not be empty", ErrInvalidArguments, key)
	}
	return value, nil
}

func int64Argument(arguments map[string]any, key string) (int64, error) {
	raw, ok := arguments[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing argument %q", ErrInvalidArguments, key)
	}
	switch value := raw.(type) {
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case int64:
		return value, nil
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("%w: argument %q must be an integer", ErrInvalidArguments, key)
		}
		return int64(value), nil
	default:
		return 0, fmt.Errorf("%w: argument %q must be an integer", ErrInvalidArguments, key)
	}
}
