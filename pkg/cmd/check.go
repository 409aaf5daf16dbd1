package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbob/synthplan/pkg/planner"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compile the demo patch twice and verify the plans are identical.",
	Long:  "Exercises the idempotence-of-planning property: compiling the same patch twice must produce byte-identical action sequences.",
	Run: func(cmd *cobra.Command, args []string) {
		runCheck()
	},
}

func runCheck() {
	_, patch, err := buildStupidSynth()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p1, err := planner.Compile(patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p2, err := planner.Compile(patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !plansEqual(p1, p2) {
		fmt.Println("FAIL: planning the same patch twice produced different plans")
		os.Exit(1)
	}

	fmt.Println("PASS: planning is idempotent")
}

func plansEqual(a, b *planner.Plan) bool {
	return actionsEqual(a.TPrep, b.TPrep) &&
		actionsEqual(a.VPrep, b.VPrep) &&
		actionsEqual(a.PreRun, b.PreRun) &&
		actionsEqual(a.VRun, b.VRun) &&
		actionsEqual(a.PostRun, b.PostRun)
}

func actionsEqual(a, b []planner.Action) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}

	return true
}
