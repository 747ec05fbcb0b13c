package signal

import "fmt"

// Modulation selects the waveform model applied to the carrier.
type Modulation int

// Supported modulation kinds.
const (
	ModulationCW Modulation = iota
	ModulationAM
	ModulationFM
	ModulationPM
	ModulationPulse
	ModulationMultitone
)

var modulationNames = map[Modulation]string{
	ModulationCW:        "cw",
	ModulationAM:        "am",
	ModulationFM:        "fm",
	ModulationPM:        "pm",
	ModulationPulse:     "pulse",
	ModulationMultitone: "multitone",
}

// String returns the canonical lower-case name of the modulation kind.
func (m Modulation) String() string {
	if name, ok := modulationNames[m]; ok {
		return name
	}

	return fmt.Sprintf("modulation(%d)", int(m))
}

// ParseModulation resolves a modulation kind from its canonical name.
func ParseModulation(name string) (Modulation, error) {
	for m, n := range modulationNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("signal: unknown modulation %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Modulation) MarshalText() ([]byte, error) {
	name, ok := modulationNames[m]
	if !ok {
		return nil, fmt.Errorf("signal: invalid modulation value %d", int(m))
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modulation) UnmarshalText(text []byte) error {
	parsed, err := ParseModulation(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// PhaseMode selects how multitone starting phases are initialized.
type PhaseMode int

// Supported multitone phase schedules.
const (
	// PhaseZero starts every tone at phase zero. All tones align at t=0,
	// producing the worst-case peak.
	PhaseZero PhaseMode = iota

	// PhaseRandom draws each starting phase uniformly from [0, 2*pi) using
	// a seeded source, in tone index order. Identical (seed, tone count)
	// always reproduces the identical phase sequence.
	PhaseRandom

	// PhaseSchroeder uses the closed-form Schroeder schedule
	// phi_k = -pi*k*(k-1)/N, which keeps the peak-to-average power ratio of
	// the tone sum low.
	PhaseSchroeder
)

var phaseModeNames = map[PhaseMode]string{
	PhaseZero:      "zero",
	PhaseRandom:    "random",
	PhaseSchroeder: "schroeder",
}

// String returns the canonical lower-case name of the phase mode.
func (p PhaseMode) String() string {
	if name, ok := phaseModeNames[p]; ok {
		return name
	}

	return fmt.Sprintf("phasemode(%d)", int(p))
}

// ParsePhaseMode resolves a phase mode from its canonical name.
func ParsePhaseMode(name string) (PhaseMode, error) {
	for p, n := range phaseModeNames {
		if n == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("signal: unknown phase mode %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (p PhaseMode) MarshalText() ([]byte, error) {
	name, ok := phaseModeNames[p]
	if !ok {
		return nil, fmt.Errorf("signal: invalid phase mode value %d", int(p))
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PhaseMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePhaseMode(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
