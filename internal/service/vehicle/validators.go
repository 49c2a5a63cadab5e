package vehicle

import "strings"

func isValidText(value string, maxLen int) bool {
	value = strings.TrimSpace(value)
	return value != "" && len(value) <= maxLen
}

func isValidCapacity(capacity int64) bool {
	return capacity > 0
}
