package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-vsg/dsp/core"
)

// Errors returned by spectrum analysis.
var (
	ErrEmptyInput        = errors.New("spectrum: input must not be empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// DecibelFloor is the clamp applied by [Result.DecibelMagnitudes]. Bins
// below this level render as exactly DecibelFloor.
const DecibelFloor = -120.0

// Result holds a center-shifted spectrum of one sample block.
//
// Frequencies[i] and Magnitudes[i] describe the same bin; the axis runs from
// -sampleRate/2 towards +sampleRate/2 with the zero-frequency bin in the
// middle. Magnitudes are linear and normalized by the block length, so a
// full-scale tone lands at 1.0.
type Result struct {
	SampleRate  float64
	Frequencies []float64
	Magnitudes  []float64
}

// DecibelMagnitudes returns the magnitudes as 20*log10 values clamped at
// [DecibelFloor].
func (r *Result) DecibelMagnitudes() []float64 {
	out := make([]float64, len(r.Magnitudes))
	for i, m := range r.Magnitudes {
		db := core.LinearToDB(m)
		if db < DecibelFloor {
			db = DecibelFloor
		}

		out[i] = db
	}

	return out
}

// Peak returns the frequency and linear magnitude of the strongest bin.
// It returns zeros for an empty result.
func (r *Result) Peak() (freqHz, magnitude float64) {
	for i, m := range r.Magnitudes {
		if m > magnitude {
			magnitude = m
			freqHz = r.Frequencies[i]
		}
	}

	return freqHz, magnitude
}

// Analyzer computes spectra of fixed-size blocks, reusing the FFT plan and
// scratch buffers across calls. It is not safe for concurrent use.
type Analyzer struct {
	size       int
	sampleRate float64
	plan       *algofft.Plan[complex128]
	bins       []complex128
}

// NewAnalyzer creates an analyzer for blocks of the given length.
func NewAnalyzer(size int, sampleRate float64) (*Analyzer, error) {
	if size <= 0 {
		return nil, ErrEmptyInput
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	return &Analyzer{
		size:       size,
		sampleRate: sampleRate,
		plan:       plan,
		bins:       make([]complex128, size),
	}, nil
}

// Analyze computes the centered spectrum of one block. The block length must
// match the analyzer size.
func (a *Analyzer) Analyze(samples []complex128) (*Result, error) {
	if len(samples) != a.size {
		return nil, fmt.Errorf("spectrum: block length %d does not match analyzer size %d", len(samples), a.size)
	}

	a.bins = core.EnsureComplexLen(a.bins, a.size)

	err := a.plan.Forward(a.bins, samples)
	if err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	n := a.size
	res := &Result{
		SampleRate:  a.sampleRate,
		Frequencies: make([]float64, n),
		Magnitudes:  make([]float64, n),
	}

	// Reindex so bin i maps to frequency (i - n/2) * rate / n, putting the
	// zero-frequency bin at the center of the axis.
	shifted := make([]complex128, n)
	for i := range shifted {
		shifted[i] = a.bins[(i+n/2)%n]
		res.Frequencies[i] = (float64(i) - float64(n)/2) * a.sampleRate / float64(n)
	}

	magnitudesInto(res.Magnitudes, shifted)

	norm := 1 / float64(n)
	for i := range res.Magnitudes {
		res.Magnitudes[i] *= norm
	}

	return res, nil
}

// Analyze is the one-shot form of [Analyzer.Analyze] for a single block.
func Analyze(samples []complex128, sampleRate float64) (*Result, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	a, err := NewAnalyzer(len(samples), sampleRate)
	if err != nil {
		return nil, err
	}

	return a.Analyze(samples)
}
