package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kbob/synthplan/pkg/planner"
)

// GetFlag gets an expected bool flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// isTerminal reports whether stdout is an interactive terminal, so the demo
// can print a bare synth name instead of a bracketed header when piped.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// dumpPlan prints a plan's five action sequences in declaration order.
func dumpPlan(plan *planner.Plan) {
	sections := []struct {
		name    string
		actions []planner.Action
	}{
		{"t_prep", plan.TPrep},
		{"v_prep", plan.VPrep},
		{"pre_run", plan.PreRun},
		{"v_run", plan.VRun},
		{"post_run", plan.PostRun},
	}

	for _, section := range sections {
		fmt.Printf("%s:\n", section.name)

		if len(section.actions) == 0 {
			fmt.Println("  (empty)")
			continue
		}

		for _, action := range section.actions {
			fmt.Printf("  %s\n", action)
		}
	}
}
