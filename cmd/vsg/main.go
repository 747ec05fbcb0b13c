// Command vsg generates complex-baseband I/Q sample blocks.
//
// Usage:
//
//	vsg [flags]
//
// Without -out it writes CSV samples to stdout. With -spectrum it prints the
// strongest spectrum peaks instead.
//
// Examples:
//
//	vsg -freq 1000 -rate 100000 -samples 1000
//	vsg -mod am -mod-freq 100 -mod-strength 0.5 -out signal.csv
//	vsg -mod multitone -tones 16 -tone-phase schroeder -format bin -out signal.bin
//	vsg -params session.json -spectrum -peaks 8
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-vsg/dsp/core"
	"github.com/cwbudde/algo-vsg/dsp/signal"
	"github.com/cwbudde/algo-vsg/dsp/spectrum"
	"github.com/cwbudde/algo-vsg/export"
	"github.com/cwbudde/algo-vsg/params"
)

func main() {
	paramsPath := flag.String("params", "", "load settings from a JSON file before applying flags")
	savePath := flag.String("save-params", "", "write the effective settings to a JSON file")
	freq := flag.Float64("freq", 0, "carrier frequency in Hz")
	amp := flag.Float64("amp", 0, "output amplitude applied to every sample")
	rate := flag.Float64("rate", 0, "sample rate in Hz")
	samples := flag.Int("samples", 0, "number of samples to generate")
	mod := flag.String("mod", "", "modulation kind: cw, am, fm, pm, pulse, multitone")
	modFreq := flag.Float64("mod-freq", 0, "modulation frequency in Hz (AM/FM/PM tone, pulse repetition)")
	modStrength := flag.Float64("mod-strength", 0, "modulation strength (AM index, FM deviation Hz, PM beta, pulse duty)")
	tones := flag.Int("tones", 0, "multitone tone count")
	spacing := flag.Float64("spacing", 0, "multitone spacing in Hz")
	tonePhase := flag.String("tone-phase", "", "multitone phase schedule: zero, random, schroeder")
	seed := flag.Int64("seed", 0, "seed for random multitone phases")
	out := flag.String("out", "", "output file path")
	format := flag.String("format", "csv", "output format: csv or bin")
	showSpectrum := flag.Bool("spectrum", false, "print the strongest spectrum peaks instead of samples")
	peaks := flag.Int("peaks", 5, "number of spectrum peaks to print with -spectrum")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vsg [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates complex-baseband I/Q samples (CW, AM, FM, PM, pulse, multitone).\n")
		fmt.Fprintf(os.Stderr, "Without -out, CSV samples go to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vsg -freq 1000 -rate 100000 -samples 1000\n")
		fmt.Fprintf(os.Stderr, "  vsg -mod fm -mod-freq 100 -mod-strength 1000 -format bin -out signal.bin\n")
		fmt.Fprintf(os.Stderr, "  vsg -mod multitone -tones 16 -tone-phase schroeder -spectrum\n")
	}
	flag.Parse()

	settings := params.Default()

	if *paramsPath != "" {
		loaded, err := params.Load(*paramsPath)
		if err != nil {
			fatalf("load parameters: %v", err)
		}
		settings = loaded
	}

	// Only flags the user actually set override the loaded settings.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "freq":
			settings.Frequency = *freq
		case "amp":
			settings.Amplitude = *amp
		case "rate":
			settings.SampleRate = *rate
		case "samples":
			settings.NumSamples = *samples
		case "mod":
			m, err := signal.ParseModulation(*mod)
			if err != nil {
				flagErr = err
				return
			}
			settings.Modulation = m
		case "mod-freq":
			applyModFreq(&settings, *modFreq)
		case "mod-strength":
			applyModStrength(&settings, *modStrength)
		case "tones":
			settings.MultitoneCount = *tones
		case "spacing":
			settings.MultitoneSpacing = *spacing
		case "tone-phase":
			p, err := signal.ParsePhaseMode(*tonePhase)
			if err != nil {
				flagErr = err
				return
			}
			settings.MultitonePhase = p
		case "seed":
			settings.Seed = *seed
		}
	})
	if flagErr != nil {
		fatalf("%v", flagErr)
	}

	if err := settings.Validate(); err != nil {
		fatalf("%v", err)
	}

	if *savePath != "" {
		if err := params.Save(*savePath, settings); err != nil {
			fatalf("save parameters: %v", err)
		}
	}

	gen := signal.NewGenerator()
	block := gen.Block(settings.SignalConfig(), settings.NumSamples)
	block = export.Scale(block, settings.Amplitude)

	switch {
	case *showSpectrum:
		if err := printPeaks(block, settings.SampleRate, *peaks); err != nil {
			fatalf("%v", err)
		}
	case *out != "":
		if err := writeFile(*out, *format, block); err != nil {
			fatalf("%v", err)
		}
	default:
		if err := export.WriteCSV(os.Stdout, block); err != nil {
			fatalf("%v", err)
		}
	}
}

// applyModFreq stores the modulation frequency into the field backing the
// active modulation kind.
func applyModFreq(s *params.Settings, v float64) {
	switch s.Modulation {
	case signal.ModulationAM, signal.ModulationPM:
		s.AMModFreq = v
	case signal.ModulationFM:
		s.FMModFreq = v
	case signal.ModulationPulse:
		s.PulseFreq = v
	case signal.ModulationCW, signal.ModulationMultitone:
	}
}

// applyModStrength stores the modulation strength into the field backing the
// active modulation kind.
func applyModStrength(s *params.Settings, v float64) {
	switch s.Modulation {
	case signal.ModulationAM:
		s.AMModIndex = v
	case signal.ModulationFM:
		s.FMDeviation = v
	case signal.ModulationPM:
		s.PMModIndex = v
	case signal.ModulationPulse:
		s.PulseDutyCycle = v
	case signal.ModulationCW, signal.ModulationMultitone:
	}
}

func writeFile(path, format string, block []complex128) error {
	switch format {
	case "csv":
		return export.SaveCSV(path, block)
	case "bin":
		return export.SaveBin(path, block)
	default:
		return fmt.Errorf("unknown format %q (use csv or bin)", format)
	}
}

func printPeaks(block []complex128, sampleRate float64, count int) error {
	res, err := spectrum.Analyze(block, sampleRate)
	if err != nil {
		return err
	}

	order := make([]int, len(res.Magnitudes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return res.Magnitudes[order[a]] > res.Magnitudes[order[b]]
	})

	if count > len(order) {
		count = len(order)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude\tLevel [dB]\n")
	fmt.Fprintf(tw, "--------------\t---------\t----------\n")

	for _, idx := range order[:count] {
		mag := res.Magnitudes[idx]

		db := core.LinearToDB(mag)
		if db < spectrum.DecibelFloor {
			db = spectrum.DecibelFloor
		}

		fmt.Fprintf(tw, "%.3f\t%.6g\t%.2f\n", res.Frequencies[idx], mag, db)
	}

	return tw.Flush()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
