package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	akima "github.com/tphakala/go-akima"
)

// wavInput holds a fully decoded WAV file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	samples  []int // interleaved PCM
	format   *audio.Format
}

// loadWAV opens, validates, and fully decodes a WAV file.
func loadWAV(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, bitDepth)
	}

	if len(buf.Data) < format.NumChannels*akima.MinSamples {
		return nil, fmt.Errorf("%s: too short to resample", path)
	}

	return &wavInput{
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
		samples:  buf.Data,
		format:   format,
	}, nil
}

// writeWAV writes interleaved PCM samples to a WAV file.
func writeWAV(path string, rate, bitDepth, channels int, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, rate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return f.Close()
}

// getMaxValue returns the peak sample value for a PCM bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleave splits interleaved PCM into normalized per-channel float64
// slices in [-1, 1].
func deinterleave(samples []int, channels, bitDepth int) [][]float64 {
	frames := len(samples) / channels
	invMax := 1.0 / getMaxValue(bitDepth)

	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float64(samples[base+ch]) * invMax
		}
	}
	return out
}

// interleave merges normalized per-channel data back into interleaved PCM,
// clamping to the bit depth's range. Stereo uses the SIMD interleave.
func interleave(channels [][]float64, bitDepth int) []int {
	frames := len(channels[0])
	maxVal := getMaxValue(bitDepth)

	merged := make([]float64, frames*len(channels))
	if len(channels) == stereoChannels {
		f64.Interleave2(merged, channels[0], channels[1])
	} else {
		for ch, data := range channels {
			for i, v := range data {
				merged[i*len(channels)+ch] = v
			}
		}
	}

	out := make([]int, len(merged))
	for i, v := range merged {
		out[i] = clampToInt(v, maxVal)
	}
	return out
}

// clampToInt converts a normalized sample to PCM, clamping overshoot from
// interpolation back into the representable range.
func clampToInt(v, maxVal float64) int {
	s := math.Round(v * maxVal)
	if s > maxVal {
		s = maxVal
	}
	if s < -maxVal-1 {
		s = -maxVal - 1
	}
	return int(s)
}

// resampleChannels resamples every channel, concurrently when parallel is set.
// All channels have equal input length, so outputs are equal length too.
func resampleChannels(channels [][]float64, srcRate, dstRate float64, parallel bool) ([][]float64, error) {
	out := make([][]float64, len(channels))

	if !parallel || len(channels) <= 1 {
		for ch, data := range channels {
			resampled, err := akima.ResampleUniform(data, srcRate, dstRate)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			out[ch] = resampled
		}
		return out, nil
	}

	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for ch := range channels {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			resampled, err := akima.ResampleUniform(channels[channel], srcRate, dstRate)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("channel %d: %w", channel, err)
				}
				errMu.Unlock()
				return
			}
			out[channel] = resampled
		}(ch)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
