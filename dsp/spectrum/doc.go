// Package spectrum turns blocks of complex I/Q samples into centered
// frequency spectra.
//
// [Analyze] (or a reusable [Analyzer]) runs a forward FFT over the block,
// reindexes the bins so the zero-frequency bin sits in the middle of the
// axis, and normalizes magnitudes by the block length. The resulting
// [Result] maps bin i to frequency (i - n/2) * sampleRate / n, covering
// -sampleRate/2 up to (excluding) +sampleRate/2.
//
// Magnitudes are linear by default; [Result.DecibelMagnitudes] converts to
// 20*log10 with a -120 dB floor for plotting.
package spectrum
