// Package check implements schema validation of a SIIGO export without
// producing any output datasets.
package check

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oxynia/siigo-balance/cmd/root"
	"oxynia/siigo-balance/internal/fileutils"
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/siigoparser"
)

// Cmd is the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Validate that a SIIGO export carries every required column",
	Long: `Check opens the export, locates the header on physical row 8 and verifies
that every required column is present, reporting the exact missing names.`,
	Run: checkFunc,
}

func checkFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file is required (use --input)")
	}
	if err := Run(input, logger); err != nil {
		logger.Fatalf("Validation failed: %v", err)
	}
	logger.Info("The export is a valid SIIGO file",
		logging.Field{Key: logging.FieldInputFile, Value: input})
}

// Run validates one export file.
func Run(input string, logger logging.Logger) error {
	if !fileutils.FileExists(input) {
		return fmt.Errorf("input file does not exist: %s", input)
	}

	file, err := os.Open(input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	valid, err := siigoparser.ValidateFormat(file, logger)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("the file is not a valid SIIGO export")
	}
	return nil
}
