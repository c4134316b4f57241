package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clarity/cmd/clarity/tui"
	"clarity/internal/config"
	"clarity/internal/decision"
	"clarity/internal/llm"
	"clarity/internal/logging"
	"clarity/internal/quiz"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// Global flags
	verbose bool
	apiKey  string
	model   string
	theme   string

	// analyze flags
	analyzeTitle string
	analyzeDesc  string
	analyzeOpts  []string
	analyzeStyle string
	analyzeRisk  string
	dryRun       bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "clarity",
	Short: "clarity - AI decision coach for your terminal",
	Long: `clarity walks you through a short personality quiz and a structured
decision form, then asks an AI completion service for a summary and
recommendations tailored to your decision style and risk tolerance.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Name() == "clarity" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// analyzeCmd runs a single analysis without the interactive UI.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one decision non-interactively",
	Long: `Runs a single decision analysis from flags and prints the summary and
recommendations. Options take the form "Title|pros|cons"; pros and cons may
be omitted.

Example:
  clarity analyze --title "Move cities" --description "Job offer abroad" \
    --option "Stay|stable income|" --option "Move|new start|costly" \
    --style analytical --risk moderate`,
	RunE: runAnalyze,
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clarity version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clarity %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and env)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "completion model override")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "UI theme: light or dark")

	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "decision title (required)")
	analyzeCmd.Flags().StringVar(&analyzeDesc, "description", "", "decision description (required)")
	analyzeCmd.Flags().StringArrayVar(&analyzeOpts, "option", nil, `option as "Title|pros|cons" (repeatable, at least one)`)
	analyzeCmd.Flags().StringVar(&analyzeStyle, "style", "", "decision style: analytical, intuitive or collaborative")
	analyzeCmd.Flags().StringVar(&analyzeRisk, "risk", "", "risk tolerance: conservative, moderate or adventurous")
	analyzeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the prompt instead of calling the service")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves config with flag overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}
	if model != "" {
		cfg.Model = model
	}
	if theme != "" {
		cfg.Theme = theme
	}
	return cfg, nil
}

func newClient(cfg *config.Config) (llm.CompletionClient, error) {
	return llm.NewGeminiClient(llm.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.Model,
	})
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if dir, derr := config.Dir(); derr == nil {
		if lerr := logging.Initialize(dir, cfg.DebugMode || verbose); lerr != nil {
			fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", lerr)
		}
		defer logging.Close()
	}

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("completion service not configured: %w (set GEMINI_API_KEY or --api-key)", err)
	}

	return tui.Run(tui.Config{Client: client, Theme: cfg.Theme})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input, profile, err := buildAnalyzeInput()
	if err != nil {
		return err
	}

	prompt := decision.BuildPrompt(input, profile)
	if dryRun {
		fmt.Println(prompt)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("completion service not configured: %w", err)
	}

	logger.Debug("sending analysis prompt", zap.Int("bytes", len(prompt)))
	response, err := client.Complete(context.Background(), prompt)
	if err != nil {
		logger.Error("completion failed", zap.Error(err))
		return fmt.Errorf("analysis failed: %w", err)
	}

	analysis := decision.ParseAnalysis(response)
	fmt.Println("Decision Summary")
	fmt.Printf("  %s\n\n", analysis.Summary)
	fmt.Println("Recommendations")
	for _, rec := range analysis.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	return nil
}

// buildAnalyzeInput assembles the same decision input the interactive form
// would produce, validated by the same rules.
func buildAnalyzeInput() (*decision.Input, decision.Profile, error) {
	style, err := quiz.ParseStyle(analyzeStyle)
	if err != nil {
		return nil, decision.Profile{}, err
	}
	risk, err := quiz.ParseRisk(analyzeRisk)
	if err != nil {
		return nil, decision.Profile{}, err
	}

	if len(analyzeOpts) == 0 {
		return nil, decision.Profile{}, fmt.Errorf("at least one --option is required")
	}

	input := &decision.Input{Title: analyzeTitle, Description: analyzeDesc}
	for _, raw := range analyzeOpts {
		parts := strings.SplitN(raw, "|", 3)
		opt := decision.Option{Title: parts[0]}
		if len(parts) > 1 {
			opt.Pros = parts[1]
		}
		if len(parts) > 2 {
			opt.Cons = parts[2]
		}
		input.Options = append(input.Options, opt)
	}

	if !input.Complete() {
		return nil, decision.Profile{}, fmt.Errorf("title, description and every option title are required")
	}

	return input, decision.Profile{
		DecisionStyle: string(style),
		RiskTolerance: string(risk),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
