package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

const (
	banner    = "Article Summarizer with Multiple AI Providers"
	wideRule  = "=================================================="
	shortRule = "------------------------------"
	longDash  = "--------------------------------------------------"
)

// summarizer runs one summarization: select a provider, read the article, ask the
// provider for a summary, show it and copy it to the clipboard.
type summarizer struct {
	in  *bufio.Reader
	out io.Writer
	log *slog.Logger

	// providerID skips the interactive menu when set.
	providerID ProviderID
	// article, when set, is read instead of in.
	article io.Reader
	// clipboard is skipped when nil.
	clipboard   Clipboard
	newProvider func(ProviderID) (LLMProvider, error)
}

func (s *summarizer) run(ctx context.Context) error {
	s.println(banner)
	s.println(wideRule)

	id := s.providerID
	if id == "" {
		var err error
		id, err = selectProvider(s.in, s.out)
		if err != nil {
			return err
		}
	}
	s.printf("\nUsing %s for summarization\n", id.Title())
	s.println(shortRule)

	article, err := s.readArticle()
	if err != nil {
		return err
	}
	if strings.TrimSpace(article) == "" {
		return fmt.Errorf("%w: no article text provided", ErrValidation)
	}

	prompt := buildSummaryPrompt(article)

	s.println("\nGenerating summary...")

	provider, err := s.newProvider(id)
	if err != nil {
		return err
	}

	start := time.Now()
	summary, err := provider.Summarize(ctx, prompt)
	s.log.DebugContext(ctx, "Provider call finished",
		"provider", provider.Name(),
		"promptBytes", len(prompt),
		"summaryBytes", len(summary),
		"elapsed", time.Since(start),
		"error", err)
	if err != nil {
		return err
	}
	if strings.TrimSpace(summary) == "" {
		return fmt.Errorf("%w: no summary received from %s", ErrValidation, provider.Name())
	}

	s.println("\n" + wideRule)
	s.println("ARTICLE SUMMARY")
	s.println(wideRule)
	s.println(summary)
	s.println(wideRule)

	if s.clipboard != nil {
		copyToClipboard(s.out, s.clipboard, summary)
	}
	return nil
}

func (s *summarizer) readArticle() (string, error) {
	if s.article != nil {
		return readArticle(s.article)
	}
	s.println("Please paste your article text below (press Ctrl+D when finished):")
	s.println(longDash)
	return readArticle(s.in)
}

func (s *summarizer) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *summarizer) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
