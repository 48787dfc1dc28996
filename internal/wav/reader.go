// Package wav reads 16-bit PCM RIFF/WAVE files into mono float64 samples
// for partitioning and visual summarization. It is deliberately minimal:
// compressed or float formats are rejected.
package wav

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Track holds decoded audio: mono samples normalized to [-1, 1] and the
// source sample rate.
type Track struct {
	SampleRate int
	Samples    []float64
}

// Len returns the number of sample frames.
func (t *Track) Len() int64 {
	return int64(len(t.Samples))
}

// Seconds returns the track duration.
func (t *Track) Seconds() float64 {
	if t.SampleRate == 0 {
		return 0
	}
	return float64(len(t.Samples)) / float64(t.SampleRate)
}

// DecodeFile reads and decodes a WAV file from disk.
func DecodeFile(path string) (*Track, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode parses a 16-bit PCM WAV from memory. Multi-channel audio is
// averaged down to mono.
func Decode(b []byte) (*Track, error) {
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	var (
		channels   int
		sampleRate int
		bits       int
		data       []byte
		haveFmt    bool
	)

	// Walk the chunk list. Chunk payloads are padded to even lengths.
	off := 12
	for off+8 <= len(b) {
		id := string(b[off : off+4])
		size := int(binary.LittleEndian.Uint32(b[off+4 : off+8]))
		off += 8
		if off+size > len(b) {
			return nil, fmt.Errorf("chunk %q: truncated (%d bytes declared)", id, size)
		}
		body := b[off : off+size]

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("fmt chunk too short: %d bytes", size)
			}
			format := binary.LittleEndian.Uint16(body[0:2])
			if format != 1 {
				return nil, fmt.Errorf("unsupported audio format %d (want PCM)", format)
			}
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bits = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true
		case "data":
			data = body
		}

		off += size
		if size%2 == 1 {
			off++
		}
	}

	if !haveFmt {
		return nil, fmt.Errorf("missing fmt chunk")
	}
	if data == nil {
		return nil, fmt.Errorf("missing data chunk")
	}
	if bits != 16 {
		return nil, fmt.Errorf("unsupported bit depth %d (want 16)", bits)
	}
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}

	frameBytes := 2 * channels
	frames := len(data) / frameBytes
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		base := i * frameBytes
		for c := 0; c < channels; c++ {
			raw := int16(binary.LittleEndian.Uint16(data[base+2*c : base+2*c+2]))
			sum += float64(raw) / 32768.0
		}
		samples[i] = sum / float64(channels)
	}

	return &Track{SampleRate: sampleRate, Samples: samples}, nil
}
