package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/WhimsicallyDandy/minigrep/internal/app"
	"github.com/WhimsicallyDandy/minigrep/internal/config"
)

// caseInsensitiveEnvVar controls the default case mode: set (to any value,
// empty included) means case-insensitive.
const caseInsensitiveEnvVar = "CASE_INSENSITIVE"

var rootCmd = &cobra.Command{
	Use:   "minigrep <query> <filename>",
	Short: "A CLI tool for searching a file for lines containing a string",
	Long: `minigrep prints every line of a file containing the given query string.

The search is case-sensitive unless the CASE_INSENSITIVE environment
variable is set; an explicit -s (sensitive) or -S (insensitive) flag
overrides the environment.`,
	// The contract fixes positional <query> <filename> with -S consulted by
	// presence among the trailing arguments, so the raw argument vector goes
	// to the resolver untouched. ArbitraryArgs keeps cobra from rejecting
	// positionals because subcommands exist.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runSearch,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if config.IsParseError(err) {
			fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		}
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Flag parsing is disabled, so args is everything after the program
	// name; rebuild the full vector the resolver expects.
	argv := append([]string{os.Args[0]}, args...)
	cfg, err := config.Resolve(argv, caseInsensitiveEnvSet())
	if err != nil {
		return err
	}

	application := app.New(cfg)
	application.Stdout = cmd.OutOrStdout()

	if cfg.Verbose {
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()
		application.Logger = logger
	}

	return application.Run()
}

// caseInsensitiveEnvSet reports whether CASE_INSENSITIVE is present in the
// environment. Only presence matters, so empty values count as set.
func caseInsensitiveEnvSet() bool {
	v := viper.New()
	v.AllowEmptyEnv(true)
	if err := v.BindEnv("case_insensitive", caseInsensitiveEnvVar); err != nil {
		return false
	}
	return v.IsSet("case_insensitive")
}

// newLogger builds the debug logger used under --verbose
func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return zcfg.Build()
}
