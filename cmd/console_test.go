package cmd

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectProvider(t *testing.T) {
	testCases := []struct {
		input    string
		expected ProviderID
	}{
		{"1\n", ProviderOllama},
		{"2\n", ProviderOpenAI},
		{"3\n", ProviderAnthropic},
		{"  3  \r\n", ProviderAnthropic},
		{"2", ProviderOpenAI},
	}
	for _, c := range testCases {
		var out bytes.Buffer
		id, err := selectProvider(bufio.NewReader(strings.NewReader(c.input)), &out)
		assert.NoError(t, err)
		assert.Equal(t, c.expected, id)
		assert.NotContains(t, out.String(), "Invalid choice")
	}
}

func TestSelectProviderRetriesUntilValid(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("x\ny\n2\nleft over\n"))
	var out bytes.Buffer

	id, err := selectProvider(in, &out)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, id)

	output := out.String()
	assert.Contains(t, output, "1. Ollama (local)")
	assert.Contains(t, output, "2. OpenAI")
	assert.Contains(t, output, "3. Anthropic")
	assert.Equal(t, 2, strings.Count(output, "Invalid choice. Please enter 1, 2, or 3."))
	assert.Equal(t, 3, strings.Count(output, "Enter choice (1-3): "))

	// The selector must not consume input past the accepted line.
	rest, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "left over\n", string(rest))
}

func TestSelectProviderEndOfInput(t *testing.T) {
	var out bytes.Buffer
	_, err := selectProvider(bufio.NewReader(strings.NewReader("4\n")), &out)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestPromptChoice(t *testing.T) {
	var out bytes.Buffer
	choices := map[string]int{"yes": 1, "no": 0}

	v, err := promptChoice(bufio.NewReader(strings.NewReader("maybe\nno\n")), &out, "? ", choices, "yes or no")
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, "? yes or no\n? ", out.String())
}

func TestReadArticle(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"single line without newline", "The sky is blue.", "The sky is blue."},
		{"single line", "The sky is blue.\n", "The sky is blue."},
		{"multiple lines", "line one\nline two\n\nline four\n", "line one\nline two\n\nline four"},
		{"windows line endings", "one\r\ntwo\r\n", "one\ntwo"},
		{"blank lines only", "\n\n", "\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			article, err := readArticle(strings.NewReader(tc.input))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, article)
		})
	}
}

func TestReadArticleLongLine(t *testing.T) {
	long := strings.Repeat("a", 1<<20)
	article, err := readArticle(strings.NewReader(long + "\nend"))
	assert.NoError(t, err)
	assert.Equal(t, long+"\nend", article)
}
