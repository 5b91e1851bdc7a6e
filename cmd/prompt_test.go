package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryPrompt(t *testing.T) {
	testCases := []struct {
		name    string
		article string
	}{
		{"single line", "The sky is blue."},
		{"multi line", "First paragraph.\n\nSecond paragraph with *markdown*."},
		{"format verbs are kept", "Growth was 15% in 2024, up from %d."},
		{"template markers inside article", "> **Summary:** already here"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prompt := buildSummaryPrompt(tc.article)

			assert.True(t, strings.HasSuffix(prompt, tc.article), "article should be the trailing text")
			assert.True(t, strings.HasPrefix(prompt, "Please summarize the following article"))
			for _, marker := range []string{"Summary:", "The details:", "Why it matters:", "Article to summarize:\n"} {
				assert.Contains(t, prompt, marker)
			}
		})
	}
}

func TestBuildSummaryPromptEmptyArticle(t *testing.T) {
	assert.Equal(t, summaryPromptTemplate, buildSummaryPrompt(""))
}

func TestSummaryPromptTemplateLayout(t *testing.T) {
	lines := strings.Split(summaryPromptTemplate, "\n")

	assert.Contains(t, lines, "> [!Abstract]- ")
	assert.Contains(t, lines, ">**The details:** ")
	assert.Contains(t, lines, "\t>>[One-sentence overview of the article's main point in 30-45 words.] ")
	assert.True(t, strings.HasSuffix(summaryPromptTemplate, "\n\nArticle to summarize:\n"))

	for _, line := range lines {
		if strings.HasPrefix(line, "\t> - [Key point #3]") || strings.HasPrefix(line, ">**Why it matters:**") {
			assert.Greater(t, len(line), len(strings.TrimRight(line, " ")), "padding should be kept: %q", line)
		}
	}
}
