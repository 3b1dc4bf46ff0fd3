package effects

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/example/riingctl/internal/colors"
)

const day = 24 * time.Hour

// anchor is one time-of-day color waypoint on the cyclic 24-hour timeline.
type anchor struct {
	at    time.Duration // offset from midnight
	color colors.GRB
}

// clock fades between configured time-of-day anchors: the color at any
// instant is the interpolation between the nearest anchor behind and the
// nearest ahead, with both distances measured across midnight.
type clock struct {
	periodic
	anchors []anchor
	now     func() time.Time
}

func newClock(cfg Config) Effect {
	e := &clock{now: time.Now}
	e.init("clock", cfg)
	e.anchors = parseAnchors(cfg)
	e.frame = e.next
	return e
}

// parseAnchors reads the timestamps list: entries of [time-string, r, g, b].
// Malformed entries are logged and skipped.
func parseAnchors(cfg Config) []anchor {
	raw, ok := cfg["timestamps"]
	if !ok {
		log.Warn().Str("key", "timestamps").Msg("not found in lighting config")
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		log.Warn().Str("key", "timestamps").Msg("not a list in lighting config")
		return nil
	}
	anchors := make([]anchor, 0, len(list))
	for i, item := range list {
		entry, ok := item.([]any)
		if !ok || len(entry) != 4 {
			log.Warn().Int("index", i).Msg("timestamp entry must be [time, r, g, b]")
			continue
		}
		ts, ok := entry[0].(string)
		if !ok {
			log.Warn().Int("index", i).Msg("timestamp entry has no time string")
			continue
		}
		at, err := parseTimeOfDay(ts)
		if err != nil {
			log.Warn().Int("index", i).Str("time", ts).Err(err).Msg("unparseable timestamp")
			continue
		}
		r, _ := toFloat(entry[1])
		g, _ := toFloat(entry[2])
		b, _ := toFloat(entry[3])
		anchors = append(anchors, anchor{
			at:    at,
			color: colors.GRB{G: clampChannel(g), R: clampChannel(r), B: clampChannel(b)},
		})
	}
	return anchors
}

var timeLayouts = []string{"15:04:05", "15:04", "3:04PM", "3:04 PM"}

func parseTimeOfDay(s string) (time.Duration, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, err
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

func (e *clock) next() error {
	if len(e.anchors) == 0 {
		return nil
	}
	c := e.colorAt(timeOfDay(e.now()))
	for _, d := range e.devices {
		if err := d.SetLighting(d.PerLEDMode(), 0, colors.Repeat(c, d.NumLEDs())); err != nil {
			return err
		}
	}
	return nil
}

// colorAt interpolates between the nearest anchor before now and the
// nearest after, both on the wrap-around timeline. Landing exactly on an
// anchor yields that anchor's color.
func (e *clock) colorAt(now time.Duration) colors.GRB {
	var before, after anchor
	distBefore, distAfter := 2*day, 2*day
	for _, a := range e.anchors {
		back := (now - a.at + day) % day
		fwd := (a.at - now + day) % day
		if back < distBefore {
			distBefore, before = back, a
		}
		if fwd < distAfter {
			distAfter, after = fwd, a
		}
	}
	total := distBefore + distAfter
	if total == 0 {
		return before.color
	}
	factor := float64(distBefore) / float64(total)
	return colors.Lerp(before.color, after.color, factor)
}
