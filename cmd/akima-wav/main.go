// Command akima-wav resamples WAV audio files using Akima spline interpolation.
//
// Usage:
//
//	akima-wav -rate 48 input.wav output.wav
//	akima-wav -rate 16 -parallel=false input.wav output.wav
//
// Akima resampling is an interpolation, not a bandlimited filter; it suits
// upsampling and modest rate changes of smooth material. Parallel channel
// processing is enabled by default for stereo and multichannel files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// Conversion constants
	kHzToHz = 1000

	// CLI defaults
	defaultRateKHz  = 48.0
	minRequiredArgs = 2

	// Peak int values per PCM bit depth
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Channel count for the interleave fast path
	stereoChannels = 2

	// WAV audio format tag for PCM
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 44.1, 48, 96)")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -rate 48 input.wav output.wav       # Resample to 48kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 96 music.wav music_hires.wav  # Upsample to hi-res\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]
	targetRate := int(*rateKHz * kHzToHz)
	if targetRate <= 0 {
		return fmt.Errorf("invalid target rate: %g kHz", *rateKHz)
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Target rate: %d Hz", targetRate)
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	stats, err := resampleWAV(inputPath, outputPath, targetRate, *verbose, *parallel)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Resampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d samples -> %d samples per channel\n",
		stats.inputSamples, stats.outputSamples)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.inputSamples)/float64(stats.inputRate)/elapsed.Seconds())

	return nil
}

type resampleStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int
	outputSamples int
}

// resampleWAV reads a whole WAV file, resamples every channel with the Akima
// interpolator, and writes the result.
func resampleWAV(inputPath, outputPath string, targetRate int, verbose, parallel bool) (*resampleStats, error) {
	in, err := loadWAV(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	if in.rate == targetRate {
		log.Printf("warning: input already at %d Hz, copying samples unchanged", targetRate)
	}

	channels := deinterleave(in.samples, in.channels, in.bitDepth)

	resampled, err := resampleChannels(channels, float64(in.rate), float64(targetRate), parallel)
	if err != nil {
		return nil, err
	}

	outSamples := interleave(resampled, in.bitDepth)
	if err := writeWAV(outputPath, targetRate, in.bitDepth, in.channels, outSamples); err != nil {
		return nil, err
	}

	return &resampleStats{
		inputRate:     in.rate,
		outputRate:    targetRate,
		channels:      in.channels,
		bitDepth:      in.bitDepth,
		inputSamples:  len(channels[0]),
		outputSamples: len(resampled[0]),
	}, nil
}
