// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"oxynia/siigo-balance/internal/config"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "siigo-balance",
		Short: "A CLI tool to turn a monthly SIIGO export into Balance General and Estado de Resultados datasets.",
		Long: `siigo-balance reads the monthly SIIGO Excel export, reclassifies every
account into the Colombian PUC taxonomy (CLASE, SUBGRUPO, GRUPO) and writes
two Excel datasets: datos_balance_general and datos_estado_resultados.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to siigo-balance!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input SIIGO export (.xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory")
}
