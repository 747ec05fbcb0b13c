// Package export writes generated I/Q sample blocks to interchange formats.
//
// Two formats are supported: plain-text CSV with one "real,imaginary" record
// per sample, and a flat binary stream of little-endian float32 pairs
// (4 bytes I, 4 bytes Q per sample). Output amplitude is the caller's
// responsibility; apply [Scale] before writing.
package export

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Scale returns a copy of samples with every sample multiplied by amplitude.
func Scale(samples []complex128, amplitude float64) []complex128 {
	out := make([]complex128, len(samples))
	for i, s := range samples {
		out[i] = s * complex(amplitude, 0)
	}

	return out
}

// WriteCSV writes samples as two numeric columns (real, imaginary) per
// record, without a header row.
func WriteCSV(w io.Writer, samples []complex128) error {
	cw := csv.NewWriter(w)

	record := make([]string, 2)
	for _, s := range samples {
		record[0] = strconv.FormatFloat(real(s), 'g', -1, 64)
		record[1] = strconv.FormatFloat(imag(s), 'g', -1, 64)

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write csv record: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}

	return nil
}

// WriteBin writes samples as little-endian float32 pairs, real before
// imaginary, 8 bytes per sample.
func WriteBin(w io.Writer, samples []complex128) error {
	buf := make([]byte, 0, len(samples)*8)

	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(real(s))))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(imag(s))))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("export: write binary samples: %w", err)
	}

	return nil
}

// SaveCSV writes samples in CSV form to the file at path, replacing any
// existing file.
func SaveCSV(path string, samples []complex128) error {
	return saveFile(path, samples, WriteCSV)
}

// SaveBin writes samples in binary form to the file at path, replacing any
// existing file.
func SaveBin(path string, samples []complex128) error {
	return saveFile(path, samples, WriteBin)
}

func saveFile(path string, samples []complex128, write func(io.Writer, []complex128) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	if err := write(f, samples); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}

	return nil
}
