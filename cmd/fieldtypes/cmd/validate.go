package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	fieldtypes "github.com/SimonDaKappa/go-fieldtypes"
)

var inputPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a definition",
	Long: `Validate the top-level members of a JSON object against a definition.

On success the values, as rewritten by the field types, are printed as
JSON. On failure every field error is printed and the command fails.

Examples:
  fieldtypes validate -d signup.yaml -i payload.json
  echo '{"address":"bob@example.com"}' | fieldtypes validate -d signup.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "JSON input file (- for stdin)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd)
	if err != nil {
		return err
	}

	input, err := fieldtypes.NewJSONInput(data)
	if err != nil {
		return err
	}

	req, logger, err := buildRequest(input)
	if err != nil {
		return err
	}
	defer logger.Sync()

	out := cmd.OutOrStdout()
	if err := req.Validate(cmd.Context()); err != nil {
		var verrs fieldtypes.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fmt.Fprintf(out, "%s: %s\n", fe.Field, fe.Message)
			}
		}
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(req.Validated())
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	if inputPath == "" || inputPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", inputPath, err)
	}
	return data, nil
}
