// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package lineset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sorted returns the elements of s in ascending order.
func sorted(s Set) []string {
	lines := s.Lines()
	sort.Strings(lines)
	return lines
}

// writeFile writes content to name under a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "duplicates collapse and lines are trimmed",
			input: "x\ny\ny\n z \n",
			want:  []string{"x", "y", "z"},
		},
		{
			name:  "blank and whitespace-only lines dropped",
			input: "\n   \n\t\na\n\n",
			want:  []string{"a"},
		},
		{
			name:  "crlf line endings",
			input: "a\r\nb\r\na\r\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "lone carriage returns",
			input: "a\rb\r\rc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "no trailing newline",
			input: "a\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "inner whitespace preserved",
			input: "a  b\n a  b \n",
			want:  []string{"a  b"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sorted(s))
		})
	}
}

func TestRead_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	s, err := Read(strings.NewReader(long + "\nshort\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(long))
}

func TestLoad(t *testing.T) {
	p := writeFile(t, "a.txt", "x\ny\ny\n z \n")

	s, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, sorted(s))
}

func TestLoad_Missing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.txt")

	s, err := Load(p)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read "+p)
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestSetBasics(t *testing.T) {
	s := New("a", "b", "a")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.ElementsMatch(t, []string{"a", "b"}, s.Lines())
}
