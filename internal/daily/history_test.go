package daily

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateHistory(t *testing.T) {
	tests := []struct {
		name     string
		history  []string
		content  string
		expected []string
	}{
		{
			name:     "Prepend to empty history",
			history:  []string{},
			content:  "Kaffe 20kr",
			expected: []string{"Kaffe 20kr"},
		},
		{
			name:     "Prepend new entry in front",
			history:  []string{"Kaffe 20kr"},
			content:  "Kaffe 25kr",
			expected: []string{"Kaffe 25kr", "Kaffe 20kr"},
		},
		{
			name:     "Duplicate leaves history untouched",
			history:  []string{"Te 15kr", "Kaffe 20kr", "Bolle 10kr"},
			content:  "Kaffe 20kr",
			expected: []string{"Te 15kr", "Kaffe 20kr", "Bolle 10kr"},
		},
		{
			name:     "Duplicate at front leaves history untouched",
			history:  []string{"Kaffe 20kr", "Te 15kr"},
			content:  "Kaffe 20kr",
			expected: []string{"Kaffe 20kr", "Te 15kr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UpdateHistory(tt.history, tt.content))
		})
	}
}

func TestUpdateHistoryCap(t *testing.T) {
	history := []string{}
	for i := 1; i <= 11; i++ {
		history = UpdateHistory(history, fmt.Sprintf("Tilbud %d", i))
	}

	assert.Len(t, history, MaxHistoryItems)
	// Most recent first, oldest entry dropped
	assert.Equal(t, "Tilbud 11", history[0])
	assert.Equal(t, "Tilbud 2", history[MaxHistoryItems-1])
	assert.NotContains(t, history, "Tilbud 1")
}

func TestDecodeHistory(t *testing.T) {
	assert.Equal(t, []string{}, decodeHistory(""))
	assert.Equal(t, []string{}, decodeHistory("not json"))
	assert.Equal(t, []string{"a", "b"}, decodeHistory(`["a","b"]`))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	history := []string{"Kaffe 20kr", "Te 15kr"}
	assert.Equal(t, history, decodeHistory(encodeHistory(history)))
}
