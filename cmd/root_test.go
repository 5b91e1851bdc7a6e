package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// executeRoot runs rootCmd with args and input, restoring the flag variables afterwards.
func executeRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	origProvider, origModel, origFile := providerName, modelName, articleFile
	origNoClipboard, origVerbose := noClipboard, verbose
	defer func() {
		providerName, modelName, articleFile = origProvider, origModel, origFile
		noClipboard, verbose = origNoClipboard, origVerbose
	}()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootUnknownProviderFlag(t *testing.T) {
	clearConfigEnv(t)

	output, err := executeRoot(t, "", "--provider", "gemini", "--no-clipboard")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.NotContains(t, output, "Select AI provider:")
}

func TestRootMissingArticleFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := executeRoot(t, "", "-p", "ollama", "-f", filepath.Join(t.TempDir(), "missing.txt"), "--no-clipboard")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRootOpenAIMissingKey(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPENAI_BASE_URL", "http://127.0.0.1:1/v1/")

	output, err := executeRoot(t, "2\nAn article worth reading.\n", "--no-clipboard", "--verbose")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, output, "Using OpenAI for summarization")
	assert.Contains(t, output, "Creating provider")
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := executeRoot(t, "", "unexpected")
	assert.Error(t, err)
}

func TestCopyToClipboard(t *testing.T) {
	var out bytes.Buffer
	cb := &fakeClipboard{}
	copyToClipboard(&out, cb, "Summary text")
	assert.Equal(t, "Summary text", cb.text)
	assert.Contains(t, out.String(), "✓ Summary copied to clipboard!")

	out.Reset()
	copyToClipboard(&out, &fakeClipboard{err: errors.New("exec: \"xclip\": executable file not found")}, "Summary text")
	assert.Contains(t, out.String(), "Warning: Could not copy to clipboard:")
}
