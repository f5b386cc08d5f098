package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMembershipLevel(t *testing.T) {
	l, err := ParseMembershipLevel("personal_training")
	require.NoError(t, err)
	assert.Equal(t, LevelPersonalTraining, l)

	_, err = ParseMembershipLevel("gold")
	assert.Error(t, err)
}

func TestParseMembershipDuration(t *testing.T) {
	d, err := ParseMembershipDuration("half_yearly")
	require.NoError(t, err)
	assert.Equal(t, DurationHalfYearly, d)

	_, err = ParseMembershipDuration("weekly")
	assert.Error(t, err)
}

func TestFacilityAdmits(t *testing.T) {
	basic := NewMember("B", 30, basicMembership())
	premium := NewMember("P", 30, basicMembership())
	premium.Membership.Level = LevelPremium

	gym := NewFacility("Weights")
	spa := Facility{Name: "Spa", PremiumOnly: true}

	assert.False(t, gym.PremiumOnly)
	assert.True(t, gym.Admits(basic))
	assert.True(t, gym.Admits(premium))
	assert.False(t, spa.Admits(basic))
	assert.True(t, spa.Admits(premium))
	assert.False(t, spa.Admits(nil))

	assert.Equal(t, "Weights (Basic)", gym.String())
	assert.Equal(t, "Spa (Premium)", spa.String())
}
