package toolset

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// validateArguments checks a tool-call argument map against the tool's JSON
// input schema before the handler runs. Supported constraints are the ones
// the registered schemas use: required fields, property types (with JSON
// numbers accepted for integers when integral), minLength on strings, and
// additionalProperties.
func validateArguments(schema map[string]any, arguments map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	required, err := parseRequiredFields(schema["required"])
	if err != nil {
		return err
	}
	for _, field := range required {
		if _, ok := arguments[field]; !ok {
			return fmt.Errorf("missing required argument %q", field)
		}
	}

	properties, hasProperties := asStringAnyMap(schema["properties"])
	additionalAllowed, err := parseAdditionalProperties(schema["additionalProperties"])
	if err != nil {
		return err
	}

	for _, key := range sortedArgumentKeys(arguments) {
		value := arguments[key]
		propertySchema, hasProperty := properties[key]
		if !hasProperty {
			if hasProperties && !additionalAllowed {
				return fmt.Errorf("unknown argument %q", key)
			}
			continue
		}

		propertyMap, ok := asStringAnyMap(propertySchema)
		if !ok {
			return errors.New(`input schema "properties" entries must be objects`)
		}

		expectedType, hasType, err := parsePropertyType(propertyMap)
		if err != nil {
			return err
		}
		if hasType && !matchesArgumentType(expectedType, value) {
			return fmt.Errorf("argument %q must be %s", key, expectedType)
		}

		if minLength, ok := propertyMap["minLength"]; ok {
			length, err := asSchemaInt(minLength)
			if err != nil {
				return fmt.Errorf(`input schema "minLength" for %q: %s`, key, err)
			}
			text, _ := value.(string)
			if len(text) < length {
				return fmt.Errorf("argument %q must be at least %d characters", key, length)
			}
		}
	}

	return nil
}

func parseRequiredFields(raw any) ([]string, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		out := make([]string, len(value))
		copy(out, value)
		return out, nil
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			field, ok := item.(string)
			if !ok {
				return nil, errors.New(`input schema "required" entries must be strings`)
			}
			out = append(out, field)
		}
		return out, nil
	default:
		return nil, errors.New(`input schema "required" must be an array`)
	}
}

func parseAdditionalProperties(raw any) (bool, error) {
	switch value := raw.(type) {
	case nil:
		return true, nil
	case bool:
		return value, nil
	default:
		return false, errors.New(`input schema "additionalProperties" must be a bool`)
	}
}

func parsePropertyType(propertyMap map[string]any) (string, bool, error) {
	rawType, ok := propertyMap["type"]
	if !ok {
		return "", false, nil
	}
	typeName, ok := rawType.(string)
	if !ok {
		return "", false, errors.New(`input schema property "type" must be a string`)
	}
	return typeName, true, nil
}

func asStringAnyMap(raw any) (map[string]any, bool) {
	value, ok := raw.(map[string]any)
	return value, ok
}

func asSchemaInt(raw any) (int, error) {
	switch value := raw.(type) {
	case int:
		return value, nil
	case float64:
		if value != math.Trunc(value) {
			return 0, errors.New("must be an integer")
		}
		return int(value), nil
	default:
		return 0, errors.New("must be an integer")
	}
}

func sortedArgumentKeys(arguments map[string]any) []string {
	keys := make([]string, 0, len(arguments))
	for key := range arguments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func matchesArgumentType(expected string, value any) bool {
	switch expected {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "integer":
		return isIntegral(value)
	case "number":
		switch value.(type) {
		case int, int32, int64, float32, float64:
			return true
		default:
			return false
		}
	default:
		return true
	}
}

// isIntegral accepts native integer kinds plus JSON-decoded float64 values
// that carry no fractional part, since transport arguments arrive through
// encoding/json.
func isIntegral(value any) bool {
	switch v := value.(type) {
	case int, int32, int64:
		return true
	case float64:
		return v == math.Trunc(v) && !math.IsInf(v, 0)
	default:
		return false
	}
}
