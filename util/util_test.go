package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Mod(13, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
}

func TestMinAndClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 5))
	assert.Equal(0, Clamp(-2, 0, 11))
	assert.Equal(11, Clamp(14, 0, 11))
	assert.Equal(7, Clamp(7, 0, 11))
}
