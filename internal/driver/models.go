package driver

import (
	"fmt"
	"strings"
)

// Model identifies a controller hardware variant. Variants differ only in
// their product-id base, their per-LED addressing byte and whether the
// hardware has persistent profile storage; everything else is shared.
type Model int

const (
	G3 Model = iota
	RiingPlus
	RiingTrio
	RiingQuad
)

var modelNames = map[Model]string{
	G3:        "g3",
	RiingPlus: "riingplus",
	RiingTrio: "riingtrio",
	RiingQuad: "riingquad",
}

// ParseModel resolves a case-insensitive model name from configuration.
func ParseModel(name string) (Model, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modelNames {
		if n == want {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown controller model %q", name)
}

func (m Model) String() string {
	if n, ok := modelNames[m]; ok {
		return n
	}
	return fmt.Sprintf("model(%d)", int(m))
}

// ProductIDBase is the product id of unit 1; each further unit of the same
// model enumerates one id higher.
func (m Model) ProductIDBase() uint16 {
	switch m {
	case RiingTrio:
		return 0x2135
	case RiingQuad:
		return 0x2260
	default: // G3 and RiingPlus share a base
		return 0x1fa5
	}
}

// ProductID resolves the product id for a controller unit (1-based).
func (m Model) ProductID(unit int) uint16 {
	return m.ProductIDBase() + uint16(unit-1)
}

// PerLEDMode is the mode byte that addresses each LED individually.
func (m Model) PerLEDMode() byte {
	switch m {
	case RiingTrio, RiingQuad:
		return 0x24
	default:
		return 0x18
	}
}

// hasProfileStorage reports whether the hardware can persist the active
// profile. The Quad has no NVRAM slot, so saving is a no-op there.
func (m Model) hasProfileStorage() bool {
	return m != RiingQuad
}
