package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanList(t *testing.T) {
	got := CleanList([]string{" React", "react", "", "IoT ", "Python", "iot"})
	assert.Equal(t, []string{"React", "IoT", "Python"}, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héllo", Truncate("héllo world", 5))
	assert.Equal(t, "short", Truncate("short", 10))
}
