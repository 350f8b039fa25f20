// fieldtypes - inspect and exercise YAML rule definitions
package main

import (
	"os"

	"github.com/SimonDaKappa/go-fieldtypes/cmd/fieldtypes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
