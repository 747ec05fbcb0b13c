// Package params persists generation and display parameters as JSON.
//
// [Settings] carries every user-facing knob: the carrier and per-modulation
// parameters, output amplitude, sample count and display preferences.
// [Load] returns a fresh value and never mutates caller state, so a failed
// restore leaves the previous in-memory settings untouched.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-vsg/dsp/signal"
)

// Errors returned by settings validation.
var (
	ErrInvalidAmplitude   = errors.New("params: amplitude must be non-negative")
	ErrInvalidSampleCount = errors.New("params: sample count must be >= 1")
)

// SpectrumScale selects how spectrum magnitudes are displayed.
type SpectrumScale string

// Supported spectrum scales.
const (
	ScaleLinear  SpectrumScale = "linear"
	ScaleDecibel SpectrumScale = "decibel"
)

// TimeUnit selects the x axis of time-domain views.
type TimeUnit string

// Supported time-domain units.
const (
	UnitSeconds TimeUnit = "seconds"
	UnitSamples TimeUnit = "samples"
)

// Settings holds all persistable generation and display parameters.
// Modulation-specific fields are kept per kind, so switching kinds and back
// restores the previous values, the way an instrument front panel behaves.
type Settings struct {
	Frequency  float64 `json:"frequency"`
	Amplitude  float64 `json:"amplitude"`
	SampleRate float64 `json:"sample_rate"`
	NumSamples int     `json:"num_samples"`

	Modulation signal.Modulation `json:"mod_type"`

	AMModFreq      float64 `json:"am_mod_freq"`
	AMModIndex     float64 `json:"am_mod_index"`
	FMModFreq      float64 `json:"fm_mod_freq"`
	FMDeviation    float64 `json:"fm_deviation"`
	PMModIndex     float64 `json:"pm_mod_index"`
	PulseFreq      float64 `json:"pulse_freq"`
	PulseDutyCycle float64 `json:"pulse_duty_cycle"`

	MultitoneCount   int              `json:"multitone_count"`
	MultitoneSpacing float64          `json:"multitone_spacing"`
	MultitonePhase   signal.PhaseMode `json:"multitone_phase"`
	Seed             int64            `json:"seed"`

	SpectrumScale  SpectrumScale `json:"spectrum_scale"`
	TimeUnit       TimeUnit      `json:"time_domain_unit"`
	ShowTimeDomain bool          `json:"show_time_domain"`
	ShowFreqDomain bool          `json:"show_freq_domain"`
}

// Default returns the startup settings: 1 kHz CW carrier sampled at
// 100 kHz, 1000 samples, dB spectrum scale.
func Default() Settings {
	return Settings{
		Frequency:        1000,
		Amplitude:        1,
		SampleRate:       100000,
		NumSamples:       1000,
		Modulation:       signal.ModulationCW,
		AMModFreq:        100,
		AMModIndex:       0.5,
		FMModFreq:        100,
		FMDeviation:      1000,
		PMModIndex:       1,
		PulseFreq:        1000,
		PulseDutyCycle:   0.5,
		MultitoneCount:   10,
		MultitoneSpacing: 1000,
		MultitonePhase:   signal.PhaseRandom,
		Seed:             0,
		SpectrumScale:    ScaleDecibel,
		TimeUnit:         UnitSeconds,
		ShowTimeDomain:   true,
		ShowFreqDomain:   true,
	}
}

// SignalConfig collapses the per-modulation fields into the one
// (frequency, strength) pair the generator consumes for the active kind.
// PM reuses the AM modulation frequency; CW and multitone carry none.
func (s Settings) SignalConfig() signal.Config {
	var modFreq, modStrength float64

	switch s.Modulation {
	case signal.ModulationAM:
		modFreq, modStrength = s.AMModFreq, s.AMModIndex
	case signal.ModulationFM:
		modFreq, modStrength = s.FMModFreq, s.FMDeviation
	case signal.ModulationPM:
		modFreq, modStrength = s.AMModFreq, s.PMModIndex
	case signal.ModulationPulse:
		modFreq, modStrength = s.PulseFreq, s.PulseDutyCycle
	case signal.ModulationCW, signal.ModulationMultitone:
	}

	return signal.Config{
		Frequency:    s.Frequency,
		SampleRate:   s.SampleRate,
		Modulation:   s.Modulation,
		ModFrequency: modFreq,
		ModStrength:  modStrength,
		ToneCount:    s.MultitoneCount,
		ToneSpacing:  s.MultitoneSpacing,
		PhaseMode:    s.MultitonePhase,
		Seed:         s.Seed,
	}
}

// Validate checks the settings, including the signal configuration they
// collapse to.
func (s Settings) Validate() error {
	if s.Amplitude < 0 {
		return ErrInvalidAmplitude
	}

	if s.NumSamples < 1 {
		return ErrInvalidSampleCount
	}

	if s.SpectrumScale != ScaleLinear && s.SpectrumScale != ScaleDecibel {
		return fmt.Errorf("params: unknown spectrum scale %q", s.SpectrumScale)
	}

	if s.TimeUnit != UnitSeconds && s.TimeUnit != UnitSamples {
		return fmt.Errorf("params: unknown time unit %q", s.TimeUnit)
	}

	return s.SignalConfig().Validate()
}

// Save writes the settings as pretty-printed JSON to the file at path.
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("params: encode settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("params: write %s: %w", path, err)
	}

	return nil
}

// Load reads settings from the JSON file at path. On any failure it returns
// the zero Settings and an error; the caller's current settings stay as
// they were.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("params: read %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("params: parse %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}
