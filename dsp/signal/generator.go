package signal

import (
	"math"
	"math/rand"
)

const twoPi = 2 * math.Pi

// Generator produces a phase-continuous stream of complex I/Q samples.
//
// A Generator owns only oscillator state: the carrier phase, the modulation
// phase and one phase accumulator per multitone component. Changing carrier
// frequency, sample rate or modulation kind between calls keeps the phase
// state, so the output stays continuous across parameter changes; only a
// multitone tone-count change discards the multitone phases (see
// [Generator.NextSample]).
//
// A Generator is not safe for concurrent use. Each stream needs its own
// instance.
type Generator struct {
	phase      float64
	modPhase   float64
	tonePhases []float64
}

// NewGenerator returns a generator with all phase accumulators at zero.
func NewGenerator() *Generator {
	return &Generator{}
}

// wrapPhase folds p back into [0, 2*pi) by a single subtraction.
//
// This assumes the per-sample increment is below 2*pi, i.e. frequencies stay
// below the sample rate. That is an accepted constraint of the supported
// frequency ranges, kept instead of a general modulo so the numeric
// behavior of long runs is exactly reproducible.
func wrapPhase(p float64) float64 {
	if p > twoPi {
		p -= twoPi
	}

	return p
}

// NextSample advances the generator by one sample period (1/SampleRate
// seconds) and returns the resulting I/Q sample.
//
// The sample magnitude carries the amplitude modulation (AM envelope, pulse
// gate) and the sample angle carries the carrier phase plus any phase
// modulation. A ModFrequency of zero is legal: the modulation phase then
// stays constant and AM/FM/PM settle to a fixed cos(0) offset instead of
// oscillating.
func (g *Generator) NextSample(cfg Config) complex128 {
	if cfg.Modulation == ModulationMultitone {
		return g.nextMultitoneSample(cfg)
	}

	g.modPhase = wrapPhase(g.modPhase + twoPi*cfg.ModFrequency/cfg.SampleRate)

	freq := cfg.Frequency
	amplitude := 1.0

	switch cfg.Modulation {
	case ModulationAM:
		// A(t) = 1 + m*cos(phi_m)
		amplitude = 1 + cfg.ModStrength*math.Cos(g.modPhase)
	case ModulationFM:
		// f(t) = f_c + df*cos(phi_m)
		freq = cfg.Frequency + cfg.ModStrength*math.Cos(g.modPhase)
	case ModulationPulse:
		// Gate is ON for the first duty-cycle fraction of each
		// modulation cycle.
		if g.modPhase >= cfg.ModStrength*twoPi {
			amplitude = 0
		}
	case ModulationCW, ModulationPM:
		// Carrier untouched here; PM is applied after the phase advance.
	}

	g.phase = wrapPhase(g.phase + twoPi*freq/cfg.SampleRate)

	angle := g.phase
	if cfg.Modulation == ModulationPM {
		// phi(t) = phi_c + beta*cos(phi_m)
		angle += cfg.ModStrength * math.Cos(g.modPhase)
	}

	sin, cos := math.Sincos(angle)

	return complex(amplitude*cos, amplitude*sin)
}

// nextMultitoneSample sums ToneCount equal-amplitude tones placed
// symmetrically around the carrier, ToneSpacing apart, normalized by the
// tone count so even fully aligned tones stay within unit magnitude.
func (g *Generator) nextMultitoneSample(cfg Config) complex128 {
	if len(g.tonePhases) != cfg.ToneCount {
		g.initTonePhases(cfg)
	}

	var iSum, qSum float64

	centerOffset := (float64(cfg.ToneCount) - 1) / 2

	for k := range g.tonePhases {
		toneFreq := cfg.Frequency + (float64(k)-centerOffset)*cfg.ToneSpacing

		g.tonePhases[k] = wrapPhase(g.tonePhases[k] + twoPi*toneFreq/cfg.SampleRate)

		sin, cos := math.Sincos(g.tonePhases[k])
		iSum += cos
		qSum += sin
	}

	scale := 1 / float64(cfg.ToneCount)

	return complex(iSum*scale, qSum*scale)
}

// initTonePhases rebuilds the per-tone phase accumulators for the configured
// tone count, discarding any previous multitone phase continuity.
func (g *Generator) initTonePhases(cfg Config) {
	g.tonePhases = make([]float64, cfg.ToneCount)

	switch cfg.PhaseMode {
	case PhaseZero:
		// Already zeroed.
	case PhaseRandom:
		rng := rand.New(rand.NewSource(cfg.Seed))
		for k := range g.tonePhases {
			g.tonePhases[k] = rng.Float64() * twoPi
		}
	case PhaseSchroeder:
		n := float64(cfg.ToneCount)
		for k := range g.tonePhases {
			kf := float64(k)
			g.tonePhases[k] = -math.Pi * kf * (kf - 1) / n
		}
	}
}

// Block generates n consecutive samples, preserving phase continuity with
// any samples generated before or after. Generating n then m samples yields
// the same sequence as one call for n+m. A non-positive n returns nil.
func (g *Generator) Block(cfg Config, n int) []complex128 {
	if n <= 0 {
		return nil
	}

	out := make([]complex128, n)
	g.BlockInto(out, cfg)

	return out
}

// BlockInto fills dst with consecutive samples, one NextSample call per
// element. It allows callers to reuse an output buffer across blocks.
func (g *Generator) BlockInto(dst []complex128, cfg Config) {
	for i := range dst {
		dst[i] = g.NextSample(cfg)
	}
}
