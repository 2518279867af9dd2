package utils

import (
	"io"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

func TestWithPadding(t *testing.T) {
	assert.Equal(t, "hello  ", WithPadding("hello", 7))
	assert.Equal(t, "hello", WithPadding("hello", 3))
}

func TestRenderTable(t *testing.T) {
	t.Run("aligns columns", func(t *testing.T) {
		output, err := RenderTable([][]string{
			{"a", "bbbbb", "c"},
			{"aaaa", "b", "cc"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "a    bbbbb c\naaaa b     cc", output)
	})

	t.Run("errors on ragged rows", func(t *testing.T) {
		_, err := RenderTable([][]string{
			{"a", "b"},
			{"a"},
		})
		assert.Error(t, err)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0123456789ab", ShortID("sha256:0123456789abcdef0123456789abcdef"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestFormatBinaryBytes(t *testing.T) {
	assert.Equal(t, "0B", FormatBinaryBytes(0))
	assert.Equal(t, "1023.00B", FormatBinaryBytes(1023))
	assert.Equal(t, "1.00kiB", FormatBinaryBytes(1025))
}

func TestResolvePlaceholderString(t *testing.T) {
	assert.Equal(
		t,
		"removing app:latest",
		ResolvePlaceholderString("removing {{image}}", map[string]string{"image": "app:latest"}),
	)
}

type fakeCloser struct {
	err    error
	closed bool
}

func (c *fakeCloser) Close() error {
	c.closed = true
	return c.err
}

func TestCloseMany(t *testing.T) {
	first := &fakeCloser{err: errors.New("first")}
	second := &fakeCloser{}

	err := CloseMany([]io.Closer{first, second})
	assert.EqualError(t, err, "first")
	assert.True(t, second.closed)
}
