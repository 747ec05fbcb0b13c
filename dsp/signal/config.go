package signal

import "errors"

// Errors returned by Config validation.
var (
	ErrInvalidSampleRate = errors.New("signal: sample rate must be positive")
	ErrInvalidFrequency  = errors.New("signal: carrier frequency must be non-negative")
	ErrInvalidModFreq    = errors.New("signal: modulation frequency must be non-negative")
	ErrInvalidDutyCycle  = errors.New("signal: pulse duty cycle must be within [0, 1]")
	ErrInvalidToneCount  = errors.New("signal: multitone tone count must be >= 1")
)

// Config describes one waveform. It is pure data, passed by value on every
// generator call; the generator never retains or mutates it.
//
// The meaning of ModFrequency and ModStrength depends on Modulation:
//
//	AM     modulating tone frequency (Hz), modulation index (dimensionless)
//	FM     modulating tone frequency (Hz), frequency deviation (Hz)
//	PM     modulating tone frequency (Hz), phase deviation beta (radians)
//	Pulse  pulse repetition frequency (Hz), duty cycle in [0, 1]
//
// CW and multitone ignore both fields. ToneCount, ToneSpacing, PhaseMode and
// Seed apply to multitone only.
type Config struct {
	Frequency    float64
	SampleRate   float64
	Modulation   Modulation
	ModFrequency float64
	ModStrength  float64
	ToneCount    int
	ToneSpacing  float64
	PhaseMode    PhaseMode
	Seed         int64
}

// DefaultConfig returns a CW configuration at 1 kHz carrier and 100 kHz
// sample rate.
func DefaultConfig() Config {
	return Config{
		Frequency:   1000,
		SampleRate:  100000,
		Modulation:  ModulationCW,
		ToneCount:   10,
		ToneSpacing: 1000,
		PhaseMode:   PhaseRandom,
	}
}

// Validate checks the configuration at the caller boundary. The generator
// assumes a validated Config and produces degenerate numeric output rather
// than errors when fed an invalid one.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if c.Frequency < 0 {
		return ErrInvalidFrequency
	}

	if c.ModFrequency < 0 {
		return ErrInvalidModFreq
	}

	if c.Modulation == ModulationPulse && (c.ModStrength < 0 || c.ModStrength > 1) {
		return ErrInvalidDutyCycle
	}

	if c.Modulation == ModulationMultitone && c.ToneCount < 1 {
		return ErrInvalidToneCount
	}

	return nil
}
