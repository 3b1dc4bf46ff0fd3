package effects

import "github.com/example/riingctl/internal/colors"

// alternating paints every other LED with one of two configured colors.
// The assignment is static, so despite living next to the reactive
// effects it only computes and sends once at start.
type alternating struct {
	base
	odd, even colors.GRB
	ok        bool
}

func newAlternating(cfg Config) Effect {
	e := &alternating{base: base{model: "alternating"}}
	og, or, ob, okOdd := cfg.grbKey("odd_rgb")
	eg, er, eb, okEven := cfg.grbKey("even_rgb")
	e.odd = colors.GRB{G: og, R: or, B: ob}
	e.even = colors.GRB{G: eg, R: er, B: eb}
	e.ok = okOdd && okEven
	return e
}

func (e *alternating) Start() error {
	if !e.ok {
		return nil
	}
	for _, d := range e.devices {
		n := d.NumLEDs()
		values := make([]byte, 0, 3*n)
		for i := 0; i < n; i++ {
			c := e.even
			if i%2 == 1 {
				c = e.odd
			}
			values = append(values, c.Triple()...)
		}
		if err := d.SetLighting(d.PerLEDMode(), 0, values); err != nil {
			return err
		}
	}
	return nil
}
