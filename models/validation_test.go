package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"info", "debug", "warning", "error", "critical"} {
		assert.True(t, ValidLogLevel(level), level)
	}

	// Case-insensitive, matching what clients actually send.
	assert.True(t, ValidLogLevel("ERROR"))
	assert.True(t, ValidLogLevel("Warning"))

	assert.False(t, ValidLogLevel("trace"))
	assert.False(t, ValidLogLevel("warn"))
	assert.False(t, ValidLogLevel(""))
}

func TestValidEventType(t *testing.T) {
	assert.True(t, ValidEventType("user_signup"))
	assert.True(t, ValidEventType("order.completed"))
	assert.True(t, ValidEventType("page view-2"))

	assert.False(t, ValidEventType(""))
	assert.False(t, ValidEventType("   "))
	assert.False(t, ValidEventType("bad;type"))
	assert.False(t, ValidEventType("drop/table"))
	assert.False(t, ValidEventType(strings.Repeat("a", 256)))
	assert.True(t, ValidEventType(strings.Repeat("a", 255)))
}

func TestValidEventStatus(t *testing.T) {
	assert.True(t, ValidEventStatus("shipped"))
	assert.True(t, ValidEventStatus("in progress"))
	assert.True(t, ValidEventStatus("v2.1-done"))

	assert.False(t, ValidEventStatus("bad;status"))
	assert.False(t, ValidEventStatus(""))
	assert.False(t, ValidEventStatus(strings.Repeat("s", 51)))
	assert.True(t, ValidEventStatus(strings.Repeat("s", 50)))
}

func TestEventLengthCapsCountCharacters(t *testing.T) {
	// The charset admits multibyte letters; the caps are character
	// counts, so 30 two-byte letters fit well under the 50 cap.
	assert.True(t, ValidEventStatus(strings.Repeat("é", 30)))
	assert.True(t, ValidEventStatus(strings.Repeat("é", 50)))
	assert.False(t, ValidEventStatus(strings.Repeat("é", 51)))

	assert.True(t, ValidEventType(strings.Repeat("ü", 255)))
	assert.False(t, ValidEventType(strings.Repeat("ü", 256)))
}
