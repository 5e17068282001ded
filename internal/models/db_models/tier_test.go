package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierAllows(t *testing.T) {
	cases := []struct {
		caller   Tier
		resource Tier
		want     bool
	}{
		{TierBronze, TierBronze, true},
		{TierBronze, TierSilver, false},
		{TierBronze, TierGold, false},
		{TierSilver, TierBronze, true},
		{TierSilver, TierSilver, true},
		{TierSilver, TierGold, false},
		{TierGold, TierBronze, true},
		{TierGold, TierSilver, true},
		{TierGold, TierGold, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.caller.Allows(tc.resource),
			"caller=%s resource=%s", tc.caller, tc.resource)
	}
}

func TestTierAllowsUnknownTierGrantsNothing(t *testing.T) {
	unknown := Tier("platinum")
	assert.False(t, unknown.Allows(TierBronze))
	assert.False(t, unknown.Allows(TierSilver))
	assert.False(t, unknown.Allows(TierGold))
}

func TestTierAccessible(t *testing.T) {
	assert.Equal(t, []Tier{TierBronze}, TierBronze.Accessible())
	assert.Equal(t, []Tier{TierBronze, TierSilver}, TierSilver.Accessible())
	assert.Equal(t, []Tier{TierBronze, TierSilver, TierGold}, TierGold.Accessible())
	assert.Nil(t, Tier("").Accessible())
}

func TestValidTier(t *testing.T) {
	assert.True(t, ValidTier("bronze"))
	assert.True(t, ValidTier("silver"))
	assert.True(t, ValidTier("gold"))
	assert.False(t, ValidTier("platinum"))
	assert.False(t, ValidTier(""))
}
