package audioio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// ErrUnsupportedFormat is returned for file extensions no decoder claims.
var ErrUnsupportedFormat = errors.New("audioio: unsupported audio format")

// File reads the audio file at path and returns its channels as float64
// slices in [-1, 1], plus the effective sample rate in Hz.
//
// The decoder is chosen by extension: .wav, .mp3, or .ogg. When targetRate
// is positive and differs from the file's rate, every channel is resampled
// by linear interpolation and the returned rate equals targetRate; a
// non-positive targetRate keeps the file's own rate.
func File(path string, targetRate int) ([][]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("audioio: open %s: %w", path, err)
	}
	defer f.Close()

	var (
		channels [][]float64
		rate     int
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		channels, rate, err = decodeWAV(f)
	case ".mp3":
		channels, rate, err = decodeMP3(f)
	case ".ogg":
		channels, rate, err = decodeOgg(f)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err != nil {
		return nil, 0, fmt.Errorf("audioio: decode %s: %w", path, err)
	}

	if targetRate > 0 && targetRate != rate {
		for i := range channels {
			channels[i] = resample(channels[i], rate, targetRate)
		}

		rate = targetRate
	}

	return channels, rate, nil
}

func decodeWAV(f *os.File) ([][]float64, int, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	bitDepth := int(dec.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}

	return deinterleaveInts(buf, bitDepth), buf.Format.SampleRate, nil
}

func decodeMP3(f *os.File) ([][]float64, int, error) {
	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, err
	}

	// go-mp3 always emits 16-bit little-endian stereo.
	const channels = 2

	frames := len(raw) / (2 * channels)
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
	}

	for i := range frames {
		for c := range channels {
			off := (i*channels + c) * 2
			v := int16(uint16(raw[off]) | uint16(raw[off+1])<<8)
			out[c][i] = float64(v) / 32768
		}
	}

	return out, dec.SampleRate(), nil
}

func decodeOgg(f *os.File) ([][]float64, int, error) {
	samples, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, 0, err
	}

	frames := len(samples) / format.Channels
	out := make([][]float64, format.Channels)
	for c := range out {
		out[c] = make([]float64, frames)
	}

	for i := range frames {
		for c := range out {
			out[c][i] = float64(samples[i*format.Channels+c])
		}
	}

	return out, format.SampleRate, nil
}

// deinterleaveInts splits an interleaved integer PCM buffer into
// per-channel float64 slices scaled by the source bit depth.
func deinterleaveInts(buf *goaudio.IntBuffer, bitDepth int) [][]float64 {
	numChans := buf.Format.NumChannels
	if numChans < 1 {
		numChans = 1
	}

	scale := float64(int64(1) << (bitDepth - 1))
	frames := len(buf.Data) / numChans

	out := make([][]float64, numChans)
	for c := range out {
		out[c] = make([]float64, frames)
	}

	for i := range frames {
		for c := range out {
			out[c][i] = float64(buf.Data[i*numChans+c]) / scale
		}
	}

	return out
}

// resample converts x from srcRate to dstRate by linear interpolation.
func resample(x []float64, srcRate, dstRate int) []float64 {
	if len(x) == 0 {
		return nil
	}

	n := int(math.Ceil(float64(len(x)) * float64(dstRate) / float64(srcRate)))
	step := float64(srcRate) / float64(dstRate)

	out := make([]float64, n)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)

		if j >= len(x)-1 {
			out[i] = x[len(x)-1]
			continue
		}

		frac := pos - float64(j)
		out[i] = x[j] + frac*(x[j+1]-x[j])
	}

	return out
}
