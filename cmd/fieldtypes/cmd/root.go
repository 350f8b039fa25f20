package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fieldtypes "github.com/SimonDaKappa/go-fieldtypes"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	// Global flags
	envFile        string
	definitionPath string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldtypes",
	Short: "Inspect and exercise field type rule definitions",
	Long: `fieldtypes loads a YAML rule definition, registers the builtin field
types and runs it the way a request would.

Commands:
  rules     - Print the ordered rule set of a definition
  validate  - Validate a JSON document against a definition

Configuration is read from FIELDTYPES_* environment variables, optionally
loaded from an env file.

Example:
  fieldtypes rules -d signup.yaml
  fieldtypes validate -d signup.yaml -i payload.json`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load FIELDTYPES_* variables from this file first")
	rootCmd.PersistentFlags().StringVarP(&definitionPath, "definition", "d", "", "YAML rule definition")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func loadConfig() (fieldtypes.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fieldtypes.Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	return fieldtypes.LoadConfig()
}

// buildRequest wires the definition, the builtin field types and input
// into a Request configured from the environment.
func buildRequest(input fieldtypes.Input) (*fieldtypes.Request, *zap.Logger, error) {
	if definitionPath == "" {
		return nil, nil, fmt.Errorf("a definition is required (--definition)")
	}

	logger, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	def, err := fieldtypes.LoadDefinitionFile(definitionPath)
	if err != nil {
		return nil, nil, err
	}

	fields, err := fieldtypes.NewFieldTypes(cfg.FieldTypesOpts(logger))
	if err != nil {
		return nil, nil, err
	}

	req, err := fieldtypes.NewRequest(def, fields, input, cfg.RequestOpts(logger))
	if err != nil {
		return nil, nil, err
	}
	return req, logger, nil
}
