package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sig/audioio"
)

// ARCTIC opens a CMU ARCTIC corpus rooted at root. The expected layout is
//
//	root/
//	├── cmu_us_bdl_arctic/
//	│   └── orig/*.wav   <- speech in channel 1, EGG in channel 2
//	└── cmu_us_slt_arctic/
//	    └── orig/*.wav
//
// Recordings are resampled to sampleRate when it is positive (ARCTIC is
// recorded at 32 kHz). With egg set, channel 2 is attached to each record
// as the EGG signal; files missing a second channel then fail at read
// time, not at indexing.
func ARCTIC(root string, sampleRate int, egg bool, opts ...Option) (*Dataset, error) {
	read := func(path string) (*AudioPitch, error) {
		channels, rate, err := audioio.File(path, sampleRate)
		if err != nil {
			return nil, err
		}

		if len(channels) == 0 {
			return nil, fmt.Errorf("no audio channels in %s", path)
		}

		rec := &AudioPitch{
			Signal:     channels[0],
			SampleRate: rate,
		}

		if egg {
			if len(channels) < 2 {
				return nil, fmt.Errorf("no EGG channel in %s", path)
			}

			rec.EGG = channels[1]
		}

		return rec, nil
	}

	return New(root, read, append([]Option{WithFilter(arcticPath)}, opts...)...)
}

// arcticPath accepts WAV files inside the orig/ directory of a speaker
// tree named cmu_us_<speaker>_arctic.
func arcticPath(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		return false
	}

	dir := filepath.Dir(path)
	if filepath.Base(dir) != "orig" {
		return false
	}

	speaker := filepath.Base(filepath.Dir(dir))

	return strings.HasPrefix(speaker, "cmu_us_") && strings.HasSuffix(speaker, "_arctic")
}
