package strutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Light Rain", ToTitleCase("light rain"))
	assert.Equal(t, "Overcast Clouds", ToTitleCase("OVERCAST clouds"))
	assert.Equal(t, "", ToTitleCase(""))
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"yes", "YES", " Yes \n"} {
		assert.True(t, IsYes(s), s)
	}
	for _, s := range []string{"y", "no", "", "yess"} {
		assert.False(t, IsYes(s), s)
	}
}
