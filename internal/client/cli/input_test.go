package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader("  alice  \n"))

	text, err := GetSimpleText(reader, "Enter username", out)
	require.NoError(t, err)
	assert.Equal(t, "alice", text)
	assert.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("alice"))

	text, err := GetSimpleText(reader, "Enter username", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "alice", text)
}

func TestGetTextWithDefault(t *testing.T) {
	t.Run("empty input returns the default", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("\n"))
		text, err := GetTextWithDefault(reader, "Username", "alice", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "alice", text)
	})

	t.Run("typed input wins", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("bob\n"))
		text, err := GetTextWithDefault(reader, "Username", "alice", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "bob", text)
	})
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	out := &bytes.Buffer{}
	pw, err := GetPassword("Enter password", out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestWipeBytes(t *testing.T) {
	b := []byte("secret")
	wipeBytes(b)
	assert.Equal(t, make([]byte, 6), b)
}
