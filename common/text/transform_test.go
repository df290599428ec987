package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveAccentsString(t *testing.T) {
	assert.Equal(t, "Cafe", RemoveAccentsString("Café"))
	assert.Equal(t, "aeio", RemoveAccentsString("áêìõ"))
	assert.Equal(t, "plain", RemoveAccentsString("plain"))
}

func TestChomp(t *testing.T) {
	assert.Equal(t, "a", Chomp("a\n"))
	assert.Equal(t, "a", Chomp("a\r\n"))
	assert.Equal(t, "a", Chomp("a"))
}

func TestPuts(t *testing.T) {
	assert.Equal(t, "a\n", Puts("a"))
	assert.Equal(t, "a\n", Puts("a\n"))
	assert.Equal(t, "", Puts(""))
}
