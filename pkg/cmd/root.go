// Package cmd implements the synthplan command-line tool: a small harness
// for exercising the planner library outside of an audio engine.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version can be set at link time with -ldflags "-X
// github.com/kbob/synthplan/pkg/cmd.Version=..."; when it is empty, --version
// reports the module version recorded in the build info instead.
var Version string

var rootCmd = &cobra.Command{
	Use:   "synthplan",
	Short: "A modulation-network planner for a modular polyphonic synth.",
	Long:  "Compiles patches into ordered buffer-wiring and rendering plans for a modular polyphonic synth.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("synthplan ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}

		cmd.Help() //nolint:errcheck
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once for rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(checkCmd)
}
