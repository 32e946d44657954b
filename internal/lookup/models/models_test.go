package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory(" Number ")
	require.NoError(t, err)
	assert.Equal(t, CategoryNumber, got)

	_, err = ParseCategory("passport")
	assert.Error(t, err)
}

func TestDigitCount(t *testing.T) {
	assert.Equal(t, 12, CategoryIdentity.DigitCount())
	assert.Equal(t, 10, CategoryNumber.DigitCount())
	assert.Equal(t, 0, Category("other").DigitCount())
}
