package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the ordered rule set of a definition",
	Long: `Print one line per field, in field order, with the field's rule tokens
joined by the configured delimiter.

Example:
  fieldtypes rules -d signup.yaml
  address: required|email
  confirm: required`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	req, logger, err := buildRequest(nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := req.DefineRules(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, rule := range req.Rules() {
		fmt.Fprintf(out, "%s: %s\n", rule.Field, rule.Rule)
	}
	return nil
}
