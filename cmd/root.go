package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	providerName string
	modelName    string
	articleFile  string
	noClipboard  bool
	verbose      bool
)

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

var rootCmd = &cobra.Command{
	Use:   "article-summarizer",
	Short: "Summarize an article with Ollama, OpenAI or Anthropic and copy the result to the clipboard",
	Long: `Reads article text from standard input (or --file), sends it with a fixed summary
template to the selected backend and prints the summary.

API keys are read from OPENAI_API_KEY and ANTHROPIC_API_KEY, which may be kept in a
.env file in the working directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := newLogger(cmd)

		cfg, loaded, err := loadConfig(DefaultEnvFile)
		if err != nil {
			return err
		}
		log.DebugContext(ctx, "Configuration is loaded",
			"envFile", DefaultEnvFile,
			"envFileLoaded", loaded)

		s := &summarizer{
			in:  bufio.NewReader(cmd.InOrStdin()),
			out: cmd.OutOrStdout(),
			log: log,
			newProvider: func(id ProviderID) (LLMProvider, error) {
				log.DebugContext(ctx, "Creating provider",
					"provider", id,
					"modelOverride", modelName)
				return newProvider(id, cfg, modelName)
			},
		}
		if !noClipboard {
			s.clipboard = systemClipboard{}
		}
		if providerName != "" {
			if s.providerID, err = parseProviderID(providerName); err != nil {
				return err
			}
		}
		if articleFile != "" {
			f, err := os.Open(articleFile)
			if err != nil {
				return fmt.Errorf("%w: cannot open article file: %v", ErrValidation, err)
			}
			defer func() {
				_ = f.Close()
			}()
			s.article = f
		}

		return s.run(ctx)
	},
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.Flags().StringVarP(&providerName, "provider", "p", "", "Provider to use (ollama, openai, anthropic); prompts when empty")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "", "Model name, overrides OLLAMA_MODEL, OPENAI_MODEL or ANTHROPIC_MODEL")
	rootCmd.Flags().StringVarP(&articleFile, "file", "f", "", "Read the article from this file instead of standard input")
	rootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "Do not copy the summary to the clipboard")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
