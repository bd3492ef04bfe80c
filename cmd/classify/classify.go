// Package classify implements one-shot classification of a single account
// code from the command line.
package classify

import (
	"fmt"

	"github.com/spf13/cobra"

	"oxynia/siigo-balance/cmd/root"
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/puc"
)

var code string

// Cmd is the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single account code into the PUC taxonomy",
	Long:  `Classify canonicalizes one account code and prints its CLASE, SUBGRUPO and GRUPO labels.`,
	Run:   classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&code, "code", "c", "", "Account code, e.g. 110501 (required)")
	_ = Cmd.MarkFlagRequired("code")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	result, err := Run(code)
	if err != nil {
		logger.Fatalf("Error classifying code: %v", err)
	}

	fmt.Printf("CÓDIGO:   %s\n", result.Codigo)
	fmt.Printf("CLASE:    %s\n", result.Clase)
	fmt.Printf("SUBGRUPO: %s\n", result.Subgrupo)
	fmt.Printf("GRUPO:    %s\n", result.Grupo)
}

// Result is the classification of one canonical code.
type Result struct {
	Codigo string
	puc.Classification
}

// Run canonicalizes and classifies one account code.
func Run(raw string) (Result, error) {
	canonical, err := puc.CanonicalCode(raw)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Codigo:         canonical,
		Classification: puc.Classify(canonical),
	}, nil
}
