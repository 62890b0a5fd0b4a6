package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile    string
	paramsFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "registrydemo",
	Short: "Exercise a type-keyed registry from the command line",
	Long: `registrydemo wires a small application into a registry and walks it
through its lifecycle: put, get with params, refresh, remove and clear.

Environment (also read from the --env file):
  REGISTRY_LOG_LEVEL  debug, info, warn or error (default info)
  REGISTRY_PARAMS     YAML, JSON or TOML file with builder params`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file to load, missing files are ignored")
	rootCmd.PersistentFlags().StringVar(&paramsFile, "params", "", "params file, overrides REGISTRY_PARAMS")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides REGISTRY_LOG_LEVEL")
}

func printError(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
