package converting

import "encoding/json"

// Lenient accessors for loosely typed provider payloads. A wrong type
// behaves the same as a missing key.

func MapValue(source map[string]any, key string) map[string]any {
	value, ok := source[key].(map[string]any)
	if !ok {
		return nil
	}

	return value
}

func SliceValue(source map[string]any, key string) []any {
	value, ok := source[key].([]any)
	if !ok {
		return nil
	}

	return value
}

func StringValue(source map[string]any, key string) (string, bool) {
	value, ok := source[key].(string)
	return value, ok
}

func BoolValue(source map[string]any, key string) (bool, bool) {
	value, ok := source[key].(bool)
	return value, ok
}

// NumberValue accepts the numeric shapes different decoders produce.
func NumberValue(source map[string]any, key string) (float64, bool) {
	switch value := source[key].(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	}

	return 0, false
}

func IntValue(source map[string]any, key string) (int, bool) {
	value, ok := NumberValue(source, key)
	if !ok || value != float64(int(value)) {
		return 0, false
	}

	return int(value), true
}
