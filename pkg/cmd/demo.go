package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kbob/synthplan/pkg/planner"
	"github.com/kbob/synthplan/pkg/synth"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the StupidSynth demo patch and print its compiled plan.",
	Run: func(cmd *cobra.Command, args []string) {
		runDemo()
	},
}

// buildStupidSynth reconstructs the reference patch: an LFO and chorus
// shared across voices, per-voice envelope/oscillator/filter/amp, modulated
// by a MIDI note-pitch control (per voice) and expression/modulation
// controls (per timbre).
func buildStupidSynth() (*synth.Synth, *synth.Patch, error) {
	lfo1 := synth.NewModule("LFO1",
		synth.NewInput("rate", synth.KindScalar),
		synth.NewOutput("out", synth.KindScalar),
	)
	env := synth.NewModule("Env1",
		synth.NewInput("attack", synth.KindScalar),
		synth.NewInput("release", synth.KindScalar),
		synth.NewOutput("out", synth.KindScalar),
	)
	osc1 := synth.NewModule("Osc1",
		synth.NewInput("pitch", synth.KindScalar),
		synth.NewOutput("out", synth.KindSample),
	)
	filter := synth.NewModule("Filter",
		synth.NewInput("in", synth.KindSample),
		synth.NewOutput("out", synth.KindSample),
	)
	dca := synth.NewModule("DCA",
		synth.NewInput("in", synth.KindSample),
		synth.NewInput("gain", synth.KindScalar),
		synth.NewOutput("out", synth.KindSample),
	)
	chorus := synth.NewModule("Chorus",
		synth.NewInput("in", synth.KindSample),
		synth.NewOutput("out", synth.KindSample),
	)
	mainAmp := synth.NewModule("main",
		synth.NewInput("in", synth.KindSample),
		synth.NewInput("gain", synth.KindScalar),
		synth.NewOutput("out", synth.KindSample),
	)

	mpitch := synth.NewControl("MIDINotePitch", synth.KindScalar)
	mexp := synth.NewControl("MIDIExpression", synth.KindScalar)
	mmod := synth.NewControl("MIDIModulation", synth.KindScalar)

	s, err := synth.NewSynthBuilder("StupidSynth").
		Polyphony(2).
		Timbrality(1).
		TimbreModule(lfo1).
		VoiceModule(env).
		VoiceModule(osc1).
		VoiceModule(filter).
		VoiceModule(dca).
		TimbreModule(chorus).
		OutputModule(mainAmp).
		VoiceControl(mpitch).
		TimbreControl(mexp).
		TimbreControl(mmod).
		Finalize()
	if err != nil {
		return nil, nil, err
	}

	patch, err := s.MakePatch().
		Connect(env.Ports[1], synth.WithCtl(mexp)).
		Connect(osc1.Ports[0], synth.WithCtl(mpitch)).
		Connect(osc1.Ports[0], synth.WithSrc(env.Ports[2]), synth.WithCtl(lfo1.Ports[1]), synth.WithScale(0.3)).
		Connect(filter.Ports[0], synth.WithSrc(osc1.Ports[1])).
		Connect(dca.Ports[0], synth.WithSrc(filter.Ports[1])).
		Connect(dca.Ports[1], synth.WithSrc(env.Ports[2])).
		Connect(chorus.Ports[0], synth.WithSrc(dca.Ports[2])).
		Connect(mainAmp.Ports[0], synth.WithSrc(chorus.Ports[1])).
		Build()
	if err != nil {
		return nil, nil, err
	}

	// mmod is declared but never connected: a control may be declared
	// without being driven by any link.
	return s, patch, nil
}

func runDemo() {
	s, patch, err := buildStupidSynth()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logrus.WithField("synth", s.Name).Debug("synth finalized")

	var timbre planner.Timbre
	if err := timbre.ApplyPatch(patch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if isTerminal() {
		fmt.Printf("== %s ==\n", s.Name)
	} else {
		fmt.Printf("%s\n", s.Name)
	}

	fmt.Printf("polyphony=%d timbrality=%d\n", s.Polyphony, s.Timbrality)
	dumpPlan(timbre.Current())
}
