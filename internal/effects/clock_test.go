package effects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/riingctl/internal/colors"
)

func clockWith(anchors []anchor) *clock {
	e := &clock{anchors: anchors}
	e.init("clock", Config{})
	e.frame = e.next
	return e
}

func TestClockMidpointIsChannelAverage(t *testing.T) {
	e := clockWith([]anchor{
		{at: 6 * time.Hour, color: colors.GRB{G: 0, R: 100, B: 40}},
		{at: 18 * time.Hour, color: colors.GRB{G: 200, R: 0, B: 60}},
	})
	got := e.colorAt(12 * time.Hour)
	assert.Equal(t, colors.GRB{G: 100, R: 50, B: 50}, got)
}

func TestClockExactAnchor(t *testing.T) {
	a := colors.GRB{G: 10, R: 20, B: 30}
	e := clockWith([]anchor{
		{at: 6 * time.Hour, color: a},
		{at: 18 * time.Hour, color: colors.GRB{G: 200, R: 200, B: 200}},
	})
	assert.Equal(t, a, e.colorAt(6*time.Hour))
}

func TestClockWrapsAcrossMidnight(t *testing.T) {
	e := clockWith([]anchor{
		{at: 23 * time.Hour, color: colors.GRB{G: 0, R: 200, B: 0}},
		{at: 1 * time.Hour, color: colors.GRB{G: 100, R: 0, B: 0}},
	})

	// Midnight sits exactly between 23:00 yesterday and 01:00 today.
	assert.Equal(t, colors.GRB{G: 50, R: 100, B: 0}, e.colorAt(0))

	// A quarter into the gap.
	assert.Equal(t, colors.GRB{G: 25, R: 150, B: 0}, e.colorAt(23*time.Hour+30*time.Minute))
}

func TestClockNoDiscontinuityAtMidnight(t *testing.T) {
	e := clockWith([]anchor{
		{at: 22 * time.Hour, color: colors.GRB{G: 0, R: 240, B: 0}},
		{at: 2 * time.Hour, color: colors.GRB{G: 240, R: 0, B: 0}},
	})
	before := e.colorAt(24*time.Hour - time.Second)
	after := e.colorAt(time.Second)

	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	assert.True(t, near(before.G, after.G) && near(before.R, after.R) && near(before.B, after.B),
		"midnight wrap jumped: %+v vs %+v", before, after)
}

func TestClockSingleAnchor(t *testing.T) {
	a := colors.GRB{G: 1, R: 2, B: 3}
	e := clockWith([]anchor{{at: 8 * time.Hour, color: a}})
	assert.Equal(t, a, e.colorAt(20*time.Hour))
}

func TestParseAnchors(t *testing.T) {
	cfg := Config{"timestamps": []any{
		[]any{"06:30", 255, 100, 0},
		[]any{"18:00:30", 0, 0, 255},
		[]any{"nonsense", 1, 2, 3},
		[]any{"12:00"}, // wrong arity
	}}
	anchors := parseAnchors(cfg)
	require.Len(t, anchors, 2, "malformed entries are skipped")

	assert.Equal(t, 6*time.Hour+30*time.Minute, anchors[0].at)
	assert.Equal(t, colors.GRB{G: 100, R: 255, B: 0}, anchors[0].color)
	assert.Equal(t, 18*time.Hour+30*time.Second, anchors[1].at)
}

func TestClockBroadcast(t *testing.T) {
	e := Factory(Config{
		"model": "clock",
		"timestamps": []any{
			[]any{"00:00", 10, 20, 30},
			[]any{"12:00", 10, 20, 30},
		},
	}).(*clock)
	e.now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	}
	d := newFakeDevice()
	d.leds = 2
	e.AttachDevice(d)

	require.NoError(t, e.next())
	require.Len(t, d.sent, 1)
	assert.Equal(t, d.perLED, d.sent[0].mode)
	// identical anchors -> constant color, wire order G R B
	assert.Equal(t, []byte{20, 10, 30, 20, 10, 30}, d.sent[0].values)
}

func TestClockNoAnchorsNoSend(t *testing.T) {
	e := Factory(Config{"model": "clock"}).(*clock)
	d := newFakeDevice()
	e.AttachDevice(d)
	require.NoError(t, e.next())
	assert.Empty(t, d.sent)
}
