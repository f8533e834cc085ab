package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStringsNilBecomesEmptyArray(t *testing.T) {
	raw, err := encodeStrings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeStringsNullBecomesEmptySlice(t *testing.T) {
	ss, err := decodeStrings("null")
	require.NoError(t, err)
	require.NotNil(t, ss)
	assert.Empty(t, ss)
}

func TestStringsRoundTrip(t *testing.T) {
	raw, err := encodeStrings([]string{"a.jpg", "b.jpg"})
	require.NoError(t, err)

	ss, err := decodeStrings(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, ss)
}

func TestDecodeStringsRejectsGarbage(t *testing.T) {
	_, err := decodeStrings("{not json")
	require.Error(t, err)
}
