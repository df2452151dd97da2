// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package instant

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		kind   Kind
		output string
	}{
		{
			name:   "epoch zero",
			arg:    "0",
			kind:   KindInstant,
			output: "1970-01-01T00:00:00Z",
		},
		{
			name:   "millis to instant",
			arg:    "1707916432177",
			kind:   KindInstant,
			output: "2024-02-14T13:13:52.177Z",
		},
		{
			name:   "trailing zero millis keep three digits",
			arg:    "100",
			kind:   KindInstant,
			output: "1970-01-01T00:00:00.100Z",
		},
		{
			name:   "negative millis",
			arg:    "-1",
			kind:   KindInstant,
			output: "1969-12-31T23:59:59.999Z",
		},
		{
			name:   "explicit plus sign",
			arg:    "+1000",
			kind:   KindInstant,
			output: "1970-01-01T00:00:01Z",
		},
		{
			name:   "instant to millis",
			arg:    "2024-02-14T13:13:52.177Z",
			kind:   KindMillis,
			output: "1707916432177",
		},
		{
			name:   "year above 9999",
			arg:    "+10000-01-01T00:00:00Z",
			kind:   KindMillis,
			output: "253402300800000",
		},
		{
			name:   "year before 0000",
			arg:    "-0001-12-31T23:59:59.999Z",
			kind:   KindMillis,
			output: "-62167219200001",
		},
		{
			name:   "latest representable instant",
			arg:    "+292278994-08-17T07:12:55.807Z",
			kind:   KindMillis,
			output: "9223372036854775807",
		},
		{
			name:   "extended year leap day",
			arg:    "+10400-02-29T00:00:00Z",
			kind:   KindMillis,
			output: "266030179200000",
		},
		{
			name: "extended year without leap day",
			arg:  "+10100-02-29T00:00:00Z",
			kind: KindInvalid,
		},
		{
			name: "past the int64 millis range",
			arg:  "+292278994-08-17T07:12:55.808Z",
			kind: KindInvalid,
		},
		{
			name: "plus sign on four digit year",
			arg:  "+2024-02-14T13:13:52.177Z",
			kind: KindInvalid,
		},
		{
			name: "comma fraction separator",
			arg:  "2024-02-14T13:13:52,177Z",
			kind: KindInvalid,
		},
		{
			name:   "instant without fraction",
			arg:    "1970-01-01T00:00:00Z",
			kind:   KindMillis,
			output: "0",
		},
		{
			name:   "instant with offset",
			arg:    "2024-02-14T14:13:52.177+01:00",
			kind:   KindMillis,
			output: "1707916432177",
		},
		{
			name:   "sub-millisecond precision is truncated",
			arg:    "2024-02-14T13:13:52.177999Z",
			kind:   KindMillis,
			output: "1707916432177",
		},
		{
			name:   "pre-epoch sub-millisecond floors",
			arg:    "1969-12-31T23:59:59.9995Z",
			kind:   KindMillis,
			output: "-1",
		},
		{
			name: "not a number",
			arg:  "notanumber",
			kind: KindInvalid,
		},
		{
			name: "int64 overflow falls through and fails",
			arg:  "9223372036854775808",
			kind: KindInvalid,
		},
		{
			name: "decimal is not an integer",
			arg:  "1.5",
			kind: KindInvalid,
		},
		{
			name: "date without time",
			arg:  "2024-02-14",
			kind: KindInvalid,
		},
		{
			name: "missing zone designator",
			arg:  "2024-02-14T13:13:52.177",
			kind: KindInvalid,
		},
		{
			name: "empty",
			arg:  "",
			kind: KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Convert(tt.arg)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.kind != KindInvalid, r.Valid())
			assert.Equal(t, tt.output, r.String())
			assert.Equal(t, tt.arg, r.Input)
		})
	}
}

func TestRoundTrip_Millis(t *testing.T) {
	for _, ms := range []int64{
		0, 1, -1, 999, 1000, 1707916432177,
		-62135596800000, 253402300799999,
		253402300800000, -62167219200001,
		math.MaxInt64, math.MinInt64,
	} {
		s := Convert(Convert(strconv.FormatInt(ms, 10)).String())
		require.Equal(t, KindMillis, s.Kind, "millis %d", ms)
		assert.Equal(t, ms, s.Millis)
	}
}

func TestRoundTrip_Instant(t *testing.T) {
	for _, in := range []string{
		"1970-01-01T00:00:00Z",
		"2024-02-14T13:13:52.177Z",
		"2000-02-29T23:59:59.001Z",
		"1900-06-15T12:00:00.500Z",
		"9999-12-31T23:59:59.999Z",
	} {
		ms := Convert(in)
		require.Equal(t, KindMillis, ms.Kind, in)
		back := Convert(ms.String())
		require.Equal(t, KindInstant, back.Kind, in)
		assert.Equal(t, in, back.String())
	}
}

func TestFormat(t *testing.T) {
	base := time.Date(2024, 2, 14, 13, 13, 52, 0, time.UTC)

	assert.Equal(t, "2024-02-14T13:13:52Z", Format(base))
	assert.Equal(t, "2024-02-14T13:13:52.120Z", Format(base.Add(120*time.Millisecond)))
	assert.Equal(t, "2024-02-14T13:13:52.000120Z", Format(base.Add(120*time.Microsecond)))
	assert.Equal(t, "2024-02-14T13:13:52.000000120Z", Format(base.Add(120)))
	assert.Equal(t, "+10000-01-01T00:00:00Z", Format(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)))

	zone := time.FixedZone("X", 90*60)
	assert.Equal(t, "2024-02-14T13:13:52Z", Format(base.In(zone)), "Format always renders UTC")
	assert.Equal(t, "2024-02-14T14:43:52+01:30", FormatIn(base, zone))
	assert.Equal(t, "2024-02-14T13:13:52Z", FormatIn(base, time.UTC))
}

func TestRender(t *testing.T) {
	zone := time.FixedZone("X", -5*60*60)
	now := time.Date(2026, 2, 14, 13, 13, 52, 0, time.UTC)

	r := Convert("1707916432177")
	assert.Equal(t, "2024-02-14T08:13:52.177-05:00", r.Render(Options{Location: zone}))
	assert.Equal(t, "2024-02-14T13:13:52.177Z (2 years ago)", r.Render(Options{Relative: true, Now: now}))

	m := Convert("2028-02-14T13:13:52Z")
	assert.Equal(t, "1834146832000 (2 years from now)", m.Render(Options{Relative: true, Now: now}))
	assert.Equal(t, "1834146832000", m.Render(Options{Location: zone}), "location does not affect millis")

	assert.Equal(t, "", Convert("bogus").Render(Options{Relative: true}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "instant", KindInstant.String())
	assert.Equal(t, "millis", KindMillis.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}
