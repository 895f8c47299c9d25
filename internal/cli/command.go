package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sheetlingo/internal"
	"sheetlingo/internal/sheet"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetlingo",
		Short: "Spreadsheet Translation Pipeline",
		Long: `sheetlingo translates spreadsheet exports into a target language.

Each record's plain value is translated via OpenAI, then its Excel
formula is rewritten so that only the quoted text changes. Progress is
checkpointed periodically so an interrupted run can resume from any
snapshot.

Examples:
  sheetlingo -i export.csv -l Afrikaans   # Translate a fresh export
  sheetlingo -r checkpoints/progress_afrikaans_40_20240101_120000.csv
  sheetlingo --debug                      # Step through calls one at a time
  sheetlingo snapshots                    # List checkpoints to resume from`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags, shared with the subcommands
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.sheetlingo.yaml)")
	cmd.PersistentFlags().StringVar(&flags.CheckpointDir, "checkpoint-dir", flags.CheckpointDir, "Directory for checkpoint files")
	cmd.PersistentFlags().StringVar(&flags.PromptsDir, "prompts-dir", flags.PromptsDir, "Directory holding prompt configurations")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputFile, "input-file", "i", flags.InputFile, "Input CSV file path")
	cmd.Flags().StringVarP(&flags.OutputFile, "output-file", "o", "", "Output CSV file path (default: input name with _in<language> suffix)")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Target language for translation")
	cmd.Flags().StringVarP(&flags.ResumeFrom, "resume-from", "r", "", "Path to checkpoint file to resume from")
	cmd.Flags().IntVarP(&flags.CheckpointEvery, "save-interval", "s", flags.CheckpointEvery, "Number of records to process between progress checkpoints")
	cmd.Flags().DurationVar(&flags.Pace, "pace", flags.Pace, "Delay between records in unattended runs")
	cmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug mode with step-by-step processing")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")
	cmd.Flags().DurationVar(&flags.RequestTimeout, "request-timeout", flags.RequestTimeout, "Timeout for a single OpenAI request")

	// Prompt configuration flags
	cmd.Flags().StringVar(&flags.Preset, "preset", "", "Prompt preset to use instead of the active configuration")

	// Translation memory flags
	cmd.Flags().StringVar(&flags.MemoryDB, "memory-db", "", "SQLite file caching completed translations (disabled when empty)")

	// Logging flags
	cmd.Flags().BoolVar(&flags.LogJSON, "log-json", false, "Write logs as JSON")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Also write logs to this file")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("translation.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("translation.request_timeout", cmd.Flags().Lookup("request-timeout"))
	viper.BindPFlag("translation.pace", cmd.Flags().Lookup("pace"))
	viper.BindPFlag("checkpoint.interval", cmd.Flags().Lookup("save-interval"))
	viper.BindPFlag("checkpoint.directory", cmd.PersistentFlags().Lookup("checkpoint-dir"))
	viper.BindPFlag("prompts.directory", cmd.PersistentFlags().Lookup("prompts-dir"))
	viper.BindPFlag("memory.database", cmd.Flags().Lookup("memory-db"))
	viper.BindPFlag("log.json", cmd.Flags().Lookup("log-json"))
	viper.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".sheetlingo" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sheetlingo")
	}

	// Environment variables
	viper.SetEnvPrefix("SHEETLINGO")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// DefaultOutputPath derives the output file name from the input path,
// appending the language the way downstream tooling expects
// ("directors.csv" becomes "directors_inafrikaans.csv").
func DefaultOutputPath(inputFile string, lang sheet.Language) string {
	ext := filepath.Ext(inputFile)
	base := strings.TrimSuffix(inputFile, ext)
	return base + "_in" + lang.Lower() + ext
}
