// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package instant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/toolbox/internal/log"
)

// Kind tags what Convert recognized and therefore what it renders.
type Kind int

const (
	// KindInvalid means the input was neither an integer nor an instant.
	KindInvalid Kind = iota
	// KindInstant means the input was epoch millis; the output is an instant.
	KindInstant
	// KindMillis means the input was an instant; the output is epoch millis.
	KindMillis
)

func (k Kind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindMillis:
		return "millis"
	default:
		return "invalid"
	}
}

// Result is the outcome of Convert. Time and Millis describe the same
// instant when Kind is not KindInvalid.
type Result struct {
	Kind   Kind
	Input  string
	Time   time.Time
	Millis int64
}

// Options adjust how a Result is rendered.
type Options struct {
	// Location, when set, renders instants in that zone with a numeric offset
	// rather than in UTC.
	Location *time.Location
	// Relative appends a humanized distance from Now, e.g. " (2 years ago)".
	Relative bool
	// Now is the reference point for Relative. Zero means time.Now().
	Now time.Time
}

const secondsLayout = "2006-01-02T15:04:05"

// Convert tries arg as base-10 epoch millis first and as an RFC 3339 instant
// second. Failure of the first attempt is expected and never reported.
func Convert(arg string) Result {
	if ms, err := strconv.ParseInt(arg, 10, 64); err == nil {
		log.Debugf("parsed as millis: arg=%s", arg)
		return Result{Kind: KindInstant, Input: arg, Time: FromMillis(ms), Millis: ms}
	}

	if t, err := Parse(arg); err == nil {
		log.Debugf("parsed as instant: arg=%s", arg)
		return Result{Kind: KindMillis, Input: arg, Time: t, Millis: ToMillis(t)}
	}

	log.Debugf("unparseable: arg=%s", arg)
	return Result{Kind: KindInvalid, Input: arg}
}

// Valid reports whether the conversion succeeded.
func (r Result) Valid() bool {
	return r.Kind != KindInvalid
}

// String renders the converted value with default Options.
func (r Result) String() string {
	return r.Render(Options{})
}

// Render returns the single output line for r. An invalid Result renders as
// the empty string.
func (r Result) Render(o Options) string {
	var out string
	switch r.Kind {
	case KindInstant:
		if o.Location != nil {
			out = FormatIn(r.Time, o.Location)
		} else {
			out = Format(r.Time)
		}
	case KindMillis:
		out = strconv.FormatInt(r.Millis, 10)
	default:
		return ""
	}

	if o.Relative {
		now := o.Now
		if now.IsZero() {
			now = time.Now()
		}
		out += " (" + humanize.RelTime(r.Time, now, "ago", "from now") + ")"
	}

	return out
}

// FromMillis returns the UTC time that is ms milliseconds from the epoch.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ToMillis returns milliseconds since the epoch, dropping any sub-millisecond
// part by flooring toward negative infinity.
func ToMillis(t time.Time) int64 {
	return t.Unix()*1000 + int64(t.Nanosecond())/int64(time.Millisecond)
}

// Parse accepts an RFC 3339 instant with a Z designator or a numeric offset
// and up to nine fractional digits.
//
// Years outside 0000-9999 are written with a sign, as Format does: a `+`
// followed by more than four digits, or a `-` followed by four or more.
// The result must fit in int64 epoch millis.
func Parse(s string) (time.Time, error) {
	if strings.ContainsRune(s, ',') {
		return time.Time{}, fmt.Errorf("invalid fraction separator in %q", s)
	}

	year, rest, signed, err := splitYear(s)
	if err != nil {
		return time.Time{}, err
	}

	if !signed {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}

	// Same leap cycle as year, so Feb 29 parses exactly when it exists.
	// A whole number of 400-year cycles is always the same length.
	placeholder := 2000 + (year%400+400)%400
	t, err := time.Parse(time.RFC3339Nano, fmt.Sprintf("%04d%s", placeholder, rest))
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC().AddDate(year-placeholder, 0, 0)

	if t.Before(minTime) || !t.Before(maxTime) {
		return time.Time{}, fmt.Errorf("instant out of range: %s", s)
	}
	return t, nil
}

var (
	minTime = FromMillis(math.MinInt64)
	maxTime = FromMillis(math.MaxInt64).Add(time.Millisecond)
)

// splitYear separates a signed year from the rest of s. An unsigned s is
// returned untouched with signed false.
func splitYear(s string) (year int, rest string, signed bool, err error) {
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return 0, s, false, nil
	}

	end := strings.IndexByte(s[1:], '-')
	if end < 0 {
		return 0, "", false, fmt.Errorf("missing month in %q", s)
	}
	digits := s[1 : end+1]

	minDigits := 4
	if s[0] == '+' {
		minDigits = 5
	}
	if len(digits) < minDigits || len(digits) > 10 {
		return 0, "", false, fmt.Errorf("invalid year %q", s[:end+1])
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, "", false, fmt.Errorf("invalid year %q", s[:end+1])
		}
	}

	year, err = strconv.Atoi(digits)
	if err != nil {
		return 0, "", false, err
	}
	if s[0] == '-' {
		year = -year
	}
	return year, s[end+1:], true, nil
}

// Format renders t in UTC as an ISO-8601 instant. Whole seconds carry no
// fraction; otherwise the fraction is 3, 6 or 9 digits, whichever is the
// shortest exact form.
func Format(t time.Time) string {
	return format(t.UTC())
}

// FormatIn renders t in loc with a numeric offset, or Z when the offset is
// zero.
func FormatIn(t time.Time, loc *time.Location) string {
	return format(t.In(loc))
}

func format(t time.Time) string {
	var b strings.Builder

	if t.Year() > 9999 {
		b.WriteByte('+')
	}
	b.WriteString(t.Format(secondsLayout))

	ns := t.Nanosecond()
	switch {
	case ns == 0:
	case ns%int(time.Millisecond) == 0:
		fmt.Fprintf(&b, ".%03d", ns/int(time.Millisecond))
	case ns%int(time.Microsecond) == 0:
		fmt.Fprintf(&b, ".%06d", ns/int(time.Microsecond))
	default:
		fmt.Fprintf(&b, ".%09d", ns)
	}

	b.WriteString(t.Format("Z07:00"))
	return b.String()
}
