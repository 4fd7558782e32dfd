// Package dataset provides corpus loaders built on top of audioio.
//
// A [Dataset] indexes audio files under a root directory once, then decodes
// records on demand, so large corpora never sit in memory whole. Loaders
// for concrete corpus layouts (such as [ARCTIC]) supply the read function
// and path filter; callers can hook a transform to run per record.
package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// AudioPitch is one corpus utterance: a speech signal with an optional
// electroglottograph (EGG) channel and an optional pitch annotation.
type AudioPitch struct {
	Signal     []float64
	SampleRate int
	EGG        []float64
	Pitch      []float64
}

// ReadFunc decodes the file at path into a record.
type ReadFunc func(path string) (*AudioPitch, error)

// TransformFunc post-processes a decoded record.
type TransformFunc func(*AudioPitch) (*AudioPitch, error)

// FilterFunc reports whether a file path belongs to the corpus.
type FilterFunc func(path string) bool

// Dataset is an indexed collection of audio files under a root directory.
type Dataset struct {
	root      string
	paths     []string
	read      ReadFunc
	transform TransformFunc
}

// Option configures dataset indexing.
type Option func(*options)

type options struct {
	filter    FilterFunc
	transform TransformFunc
}

// WithFilter restricts indexing to paths the filter accepts.
func WithFilter(f FilterFunc) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithTransform runs the transform on every record returned by [Dataset.At].
func WithTransform(t TransformFunc) Option {
	return func(o *options) {
		o.transform = t
	}
}

// New walks root, indexes every regular file the filter accepts, and
// returns a dataset reading records through read. The index is sorted by
// path, so record order is stable across runs.
func New(root string, read ReadFunc, opts ...Option) (*Dataset, error) {
	if read == nil {
		return nil, fmt.Errorf("dataset: read function must not be nil")
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if o.filter == nil || o.filter(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: walk %s: %w", root, err)
	}

	sort.Strings(paths)

	return &Dataset{
		root:      root,
		paths:     paths,
		read:      read,
		transform: o.transform,
	}, nil
}

// Len returns the number of indexed files.
func (d *Dataset) Len() int {
	return len(d.paths)
}

// Root returns the corpus root directory.
func (d *Dataset) Root() string {
	return d.root
}

// Path returns the indexed file path at position i.
func (d *Dataset) Path(i int) string {
	return d.paths[i]
}

// At decodes the record at position i and applies the transform, if any.
func (d *Dataset) At(i int) (*AudioPitch, error) {
	if i < 0 || i >= len(d.paths) {
		return nil, fmt.Errorf("dataset: index %d out of range [0, %d)", i, len(d.paths))
	}

	rec, err := d.read(d.paths[i])
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", d.paths[i], err)
	}

	if d.transform != nil {
		rec, err = d.transform(rec)
		if err != nil {
			return nil, fmt.Errorf("dataset: transform %s: %w", d.paths[i], err)
		}
	}

	return rec, nil
}
