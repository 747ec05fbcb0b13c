package signal

import (
	"errors"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "zero sample rate",
			cfg:  Config{Frequency: 1000},
			want: ErrInvalidSampleRate,
		},
		{
			name: "negative sample rate",
			cfg:  Config{Frequency: 1000, SampleRate: -1},
			want: ErrInvalidSampleRate,
		},
		{
			name: "negative carrier",
			cfg:  Config{Frequency: -1, SampleRate: 48000},
			want: ErrInvalidFrequency,
		},
		{
			name: "negative modulation frequency",
			cfg:  Config{Frequency: 1, SampleRate: 48000, Modulation: ModulationAM, ModFrequency: -5},
			want: ErrInvalidModFreq,
		},
		{
			name: "duty cycle above one",
			cfg:  Config{Frequency: 1, SampleRate: 48000, Modulation: ModulationPulse, ModStrength: 1.5},
			want: ErrInvalidDutyCycle,
		},
		{
			name: "negative duty cycle",
			cfg:  Config{Frequency: 1, SampleRate: 48000, Modulation: ModulationPulse, ModStrength: -0.1},
			want: ErrInvalidDutyCycle,
		},
		{
			name: "zero tone count",
			cfg:  Config{Frequency: 1, SampleRate: 48000, Modulation: ModulationMultitone},
			want: ErrInvalidToneCount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateIgnoresInactiveKindFields(t *testing.T) {
	// A CW config with a zero tone count is fine; the multitone fields only
	// matter for multitone generation.
	cfg := Config{Frequency: 1000, SampleRate: 48000}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// Likewise an AM index above 1 is legal (overmodulation), unlike a
	// pulse duty cycle.
	cfg = Config{Frequency: 1000, SampleRate: 48000, Modulation: ModulationAM, ModStrength: 2}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestModulationTextRoundTrip(t *testing.T) {
	kinds := []Modulation{
		ModulationCW, ModulationAM, ModulationFM,
		ModulationPM, ModulationPulse, ModulationMultitone,
	}

	for _, kind := range kinds {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", kind, err)
		}

		var back Modulation
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}

		if back != kind {
			t.Fatalf("round trip %v -> %q -> %v", kind, text, back)
		}
	}
}

func TestParseModulationUnknown(t *testing.T) {
	if _, err := ParseModulation("qam"); err == nil {
		t.Fatal("expected error for unknown modulation")
	}
}

func TestPhaseModeTextRoundTrip(t *testing.T) {
	for _, mode := range []PhaseMode{PhaseZero, PhaseRandom, PhaseSchroeder} {
		text, err := mode.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", mode, err)
		}

		var back PhaseMode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}

		if back != mode {
			t.Fatalf("round trip %v -> %q -> %v", mode, text, back)
		}
	}
}

func TestParsePhaseModeUnknown(t *testing.T) {
	if _, err := ParsePhaseMode("newman"); err == nil {
		t.Fatal("expected error for unknown phase mode")
	}
}
