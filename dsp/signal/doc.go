// Package signal synthesizes complex-baseband I/Q sample streams.
//
// A [Generator] holds oscillator phase state and advances one sample period
// per call, so successive calls produce a phase-continuous stream. What it
// produces is described entirely by a [Config] value passed on every call:
// carrier frequency, sample rate, modulation kind (CW, AM, FM, PM, pulse or
// multitone) and the kind-specific parameters.
//
// The generator itself performs no validation and no I/O; callers validate a
// [Config] once at the boundary via [Config.Validate] and then treat sample
// generation as a total function. Output is deterministic: the only source
// of randomness is the seeded multitone phase initialization, which is
// reproducible for a given seed and tone count.
package signal
