package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_KnownCodes(t *testing.T) {

	msg, ok := Message(21)
	require.True(t, ok)
	assert.Equal(t, "Ihr Guthaben reicht nicht aus. Bitte loggen Sie sich im Kundenbereich ein und laden Sie Ihr Guthaben auf.", msg)

	// Range boundaries.
	for _, code := range []int{1, 95, 201, 239} {
		_, ok := Message(code)
		assert.True(t, ok, "code %d must be documented", code)
	}
}

func TestMessage_DuplicatesArePreserved(t *testing.T) {

	two, _ := Message(2)
	three, _ := Message(3)
	assert.Equal(t, two, three)

	// The 201-239 range repeats several texts from the 1-95 range under
	// different numbers; both codes must stay resolvable.
	for low, high := range map[int]int{65: 202, 66: 203, 67: 204, 70: 209} {
		lowMsg, ok := Message(low)
		require.True(t, ok)
		highMsg, ok := Message(high)
		require.True(t, ok)
		assert.Equal(t, lowMsg, highMsg, "codes %d and %d share one text", low, high)
	}
}

func TestMessage_GapsStayUnknown(t *testing.T) {

	for _, code := range []int{0, 96, 100, 150, 200, 240, 9999, -1} {
		_, ok := Message(code)
		assert.False(t, ok, "code %d must not resolve", code)
	}
}

func TestTableSize(t *testing.T) {
	// 95 codes in the first range, 39 in the second. No computed ranges.
	assert.Len(t, messages, 134)
}

func TestFromResult(t *testing.T) {

	assert.Nil(t, FromResult(OK, "OK"))

	err := FromResult(21, "ignored gateway text")
	require.NotNil(t, err)
	assert.True(t, err.Known)
	assert.Equal(t, 21, err.Code)
	assert.Contains(t, err.Error(), "Guthaben")

	unknown := FromResult(9999, "strange failure")
	require.NotNil(t, unknown)
	assert.False(t, unknown.Known)
	assert.Equal(t, 9999, unknown.Code)
	assert.Contains(t, unknown.Error(), "9999")
	assert.Contains(t, unknown.Error(), "strange failure")
}
