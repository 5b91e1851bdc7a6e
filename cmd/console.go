package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// readLine reads a single line without its line terminator. io.EOF is returned only
// when nothing was read.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// promptChoice prints prompt and reads lines until one of them, trimmed, is a key of
// choices. retryMsg is printed after every rejected line.
func promptChoice[T any](in *bufio.Reader, out io.Writer, prompt string, choices map[string]T, retryMsg string) (T, error) {
	var zero T
	for {
		_, _ = fmt.Fprint(out, prompt)
		line, err := readLine(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, fmt.Errorf("%w: input ended before a choice was made", ErrValidation)
			}
			return zero, err
		}
		if v, ok := choices[strings.TrimSpace(line)]; ok {
			return v, nil
		}
		_, _ = fmt.Fprintln(out, retryMsg)
	}
}

// selectProvider shows the provider menu and asks until a valid entry is chosen.
func selectProvider(in *bufio.Reader, out io.Writer) (ProviderID, error) {
	_, _ = fmt.Fprintln(out, "Select AI provider:")
	choices := make(map[string]ProviderID, len(providerMenu))
	keys := make([]string, 0, len(providerMenu))
	for _, item := range providerMenu {
		_, _ = fmt.Fprintf(out, "%s. %s\n", item.Key, item.Label)
		choices[item.Key] = item.ID
		keys = append(keys, item.Key)
	}

	prompt := fmt.Sprintf("Enter choice (%s-%s): ", keys[0], keys[len(keys)-1])
	retry := fmt.Sprintf("Invalid choice. Please enter %s, or %s.",
		strings.Join(keys[:len(keys)-1], ", "), keys[len(keys)-1])
	return promptChoice(in, out, prompt, choices, retry)
}

// readArticle reads lines until end of input and joins them with newlines.
func readArticle(in io.Reader) (string, error) {
	r, ok := in.(*bufio.Reader)
	if !ok {
		r = bufio.NewReader(in)
	}

	var lines []string
	for {
		line, err := readLine(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read article: %w", err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
