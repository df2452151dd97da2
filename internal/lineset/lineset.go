// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lineset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tfctl/toolbox/internal/log"
)

// maxLineSize bounds a single line. bufio.Scanner's 64 KiB default is far too
// small for generated files.
const maxLineSize = 64 << 20

// Set is a collection of distinct lines. Iteration order is unspecified.
type Set map[string]struct{}

// New returns a Set holding the given lines.
func New(lines ...string) Set {
	s := make(Set, len(lines))
	for _, l := range lines {
		s.Add(l)
	}
	return s
}

// Add inserts line into the set.
func (s Set) Add(line string) {
	s[line] = struct{}{}
}

// Has reports whether line is in the set.
func (s Set) Has(line string) bool {
	_, ok := s[line]
	return ok
}

// Len returns the number of distinct lines.
func (s Set) Len() int {
	return len(s)
}

// Retain removes every element of s that is not in other.
func (s Set) Retain(other Set) {
	for k := range s {
		if !other.Has(k) {
			delete(s, k)
		}
	}
}

// AddAll adds every element of other to s.
func (s Set) AddAll(other Set) {
	for k := range other {
		s.Add(k)
	}
}

// RemoveAll removes every element of other from s.
func (s Set) RemoveAll(other Set) {
	for k := range other {
		delete(s, k)
	}
}

// Lines returns the elements in map iteration order.
func (s Set) Lines() []string {
	lines := make([]string, 0, len(s))
	for k := range s {
		lines = append(lines, k)
	}
	return lines
}

// Read builds a Set from newline-delimited text. Each line is trimmed of
// surrounding whitespace and blank lines are dropped.
func Read(r io.Reader) (Set, error) {
	s := Set{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

// scanLines is bufio.ScanLines that also treats a lone \r as a line break.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n.
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Load reads the file at path into a Set. The file is closed before Load
// returns, whether or not reading succeeded.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debugf("loaded line set: path=%s size=%d", path, s.Len())
	return s, nil
}
