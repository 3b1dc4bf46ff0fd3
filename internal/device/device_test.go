package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/riingctl/internal/driver"
	"github.com/example/riingctl/internal/protocol"
)

type captureOutput struct {
	last []byte
}

func (c *captureOutput) WriteOut(data []byte) error {
	c.last = append([]byte(nil), data...)
	return nil
}

func TestSetLightingFraming(t *testing.T) {
	out := &captureOutput{}
	d := New(out, driver.RiingTrio, 3, 12)

	values := []byte{0x11, 0x22, 0x33}
	require.NoError(t, d.SetLighting(protocol.ModeRipple, protocol.SpeedFast, values))

	want := []byte{0x32, 0x52, 0x03, protocol.ModeRipple + protocol.SpeedFast, 0x11, 0x22, 0x33}
	assert.Equal(t, want, out.last)
}

func TestSetLightingNoValues(t *testing.T) {
	out := &captureOutput{}
	d := New(out, driver.G3, 1, 12)

	require.NoError(t, d.SetLighting(protocol.ModeFlow, protocol.SpeedSlow, nil))
	assert.Equal(t, []byte{0x32, 0x52, 0x01, protocol.ModeFlow + protocol.SpeedSlow}, out.last)
}

func TestPerLEDModeFollowsModel(t *testing.T) {
	d := New(&captureOutput{}, driver.RiingQuad, 1, 12)
	assert.Equal(t, byte(0x24), d.PerLEDMode())
	assert.Equal(t, 12, d.NumLEDs())
}
