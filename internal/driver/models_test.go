package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIDPerUnit(t *testing.T) {
	cases := []struct {
		model Model
		base  uint16
	}{
		{G3, 0x1fa5},
		{RiingPlus, 0x1fa5},
		{RiingTrio, 0x2135},
		{RiingQuad, 0x2260},
	}
	for _, tc := range cases {
		for unit := 1; unit <= 8; unit++ {
			got := tc.model.ProductID(unit)
			assert.Equal(t, tc.base+uint16(unit-1), got, "%s unit %d", tc.model, unit)
		}
	}
}

func TestPerLEDMode(t *testing.T) {
	assert.Equal(t, byte(0x18), G3.PerLEDMode())
	assert.Equal(t, byte(0x18), RiingPlus.PerLEDMode())
	assert.Equal(t, byte(0x24), RiingTrio.PerLEDMode())
	assert.Equal(t, byte(0x24), RiingQuad.PerLEDMode())
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("RiingTrio")
	require.NoError(t, err)
	assert.Equal(t, RiingTrio, m)

	m, err = ParseModel("  g3 ")
	require.NoError(t, err)
	assert.Equal(t, G3, m)

	_, err = ParseModel("doesnotexist")
	assert.Error(t, err)
}
