package domain

import (
	"fmt"
	"time"
)

// MembershipLevel is the tier of service a member pays for.
type MembershipLevel string

const (
	LevelBasic            MembershipLevel = "basic"
	LevelPremium          MembershipLevel = "premium"
	LevelPersonalTraining MembershipLevel = "personal_training"
)

// Valid reports whether l is one of the known levels.
func (l MembershipLevel) Valid() bool {
	switch l {
	case LevelBasic, LevelPremium, LevelPersonalTraining:
		return true
	}
	return false
}

// ParseMembershipLevel converts a raw value (e.g. from config) into a MembershipLevel.
func ParseMembershipLevel(s string) (MembershipLevel, error) {
	l := MembershipLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown membership level %q", s)
	}
	return l, nil
}

// MembershipDuration is the billing period of a membership.
type MembershipDuration string

const (
	DurationMonthly    MembershipDuration = "monthly"
	DurationQuarterly  MembershipDuration = "quarterly"
	DurationHalfYearly MembershipDuration = "half_yearly"
	DurationYearly     MembershipDuration = "yearly"
)

func (d MembershipDuration) Valid() bool {
	switch d {
	case DurationMonthly, DurationQuarterly, DurationHalfYearly, DurationYearly:
		return true
	}
	return false
}

func ParseMembershipDuration(s string) (MembershipDuration, error) {
	d := MembershipDuration(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown membership duration %q", s)
	}
	return d, nil
}

// Membership is owned by exactly one Member.
// Active is set by hand; it is not derived from StartDate and Duration.
type Membership struct {
	Level     MembershipLevel    `json:"level"`
	Duration  MembershipDuration `json:"duration"`
	StartDate time.Time          `json:"startDate"`
	Active    bool               `json:"active"`
}

// NewMembership returns an active membership.
func NewMembership(level MembershipLevel, duration MembershipDuration, startDate time.Time) Membership {
	return Membership{
		Level:     level,
		Duration:  duration,
		StartDate: startDate,
		Active:    true,
	}
}

func (m Membership) String() string {
	return fmt.Sprintf("%s (%s) από %s", m.Level, m.Duration, m.StartDate.Format(DateLayout))
}
