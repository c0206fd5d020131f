package daily

import "encoding/json"

// MaxHistoryItems caps how many prior offers/quotes are kept.
const MaxHistoryItems = 10

// UpdateHistory prepends content to the history unless it is already present,
// keeping at most MaxHistoryItems entries. A duplicate leaves the history
// untouched, order included; only the current value changes in that case.
func UpdateHistory(history []string, content string) []string {
	for _, h := range history {
		if h == content {
			return history
		}
	}

	updated := append([]string{content}, history...)
	if len(updated) > MaxHistoryItems {
		updated = updated[:MaxHistoryItems]
	}
	return updated
}

// decodeHistory parses a stored JSON history column. Bad or empty data
// degrades to an empty history rather than failing the request.
func decodeHistory(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var history []string
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return []string{}
	}
	return history
}

func encodeHistory(history []string) string {
	b, err := json.Marshal(history)
	if err != nil {
		return "[]"
	}
	return string(b)
}
