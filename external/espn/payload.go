package espn

import (
	"strconv"
	"strings"
)

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	value, ok := src[key].(map[string]any)
	if !ok {
		return nil
	}
	return value
}

func getSlice(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	value, ok := src[key].([]any)
	if !ok {
		return nil
	}
	return value
}

func getBool(src map[string]any, key string) bool {
	if src == nil {
		return false
	}
	switch typed := src[key].(type) {
	case bool:
		return typed
	case float64:
		return typed > 0
	case string:
		v := strings.ToLower(strings.TrimSpace(typed))
		return v == "true" || v == "1" || v == "yes"
	default:
		return false
	}
}

func asInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int64:
		return int(typed)
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			parsed, ferr := strconv.ParseFloat(strings.TrimSpace(typed), 64)
			if ferr != nil {
				return 0
			}
			return int(parsed)
		}
		return v
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
