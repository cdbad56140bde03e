package aur

import (
	"bytes"
	"iter"
)

// Index is a decoded packages.gz body.
type Index struct {
	data []byte
}

// ParseIndex wraps decoded index data. Lines are split lazily by Names.
func ParseIndex(data []byte) *Index {
	return &Index{data: data}
}

// Names yields every package name in index order. The first line is a
// header and is always skipped, as are empty lines. Each call starts a
// fresh pass over the data, so the sequence can be ranged over repeatedly.
// Yielded slices alias the index buffer and must not be modified.
func (i *Index) Names() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		rest := i.data
		header := true
		for len(rest) > 0 {
			var line []byte
			if n := bytes.IndexByte(rest, '\n'); n >= 0 {
				line, rest = rest[:n], rest[n+1:]
			} else {
				line, rest = rest, nil
			}

			if header {
				header = false
				continue
			}
			if len(line) == 0 {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
