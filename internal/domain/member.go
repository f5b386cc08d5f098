package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// DigitalIDLength is the number of characters kept from the generated UUID.
// Truncation trades collision resistance for a short, printable token.
const DigitalIDLength = 8

// AdultAge is the age from which no parental consent is needed.
const AdultAge = 18

// Member is a registered person. The member owns its Membership and Schedules.
type Member struct {
	FullName        string     `json:"fullName"`
	Age             int        `json:"age"`
	Membership      Membership `json:"membership"`
	Schedules       []Schedule `json:"schedules"`
	DigitalID       string     `json:"digitalId"` // Primary key in the registry
	ParentalConsent bool       `json:"parentalConsent"`
}

// NewDigitalID returns a fresh short identifier for a member.
func NewDigitalID() string {
	return uuid.NewString()[:DigitalIDLength]
}

// NewMember builds a member with a generated DigitalID, no schedules and no
// parental consent. Input is accepted as-is; negative ages or empty names are
// not rejected.
func NewMember(fullName string, age int, membership Membership) *Member {
	return &Member{
		FullName:   fullName,
		Age:        age,
		Membership: membership,
		Schedules:  []Schedule{},
		DigitalID:  NewDigitalID(),
	}
}

// CanRegister reports whether the member is eligible to register.
// Minors need parental consent.
func (m *Member) CanRegister() bool {
	if m.Age < AdultAge && !m.ParentalConsent {
		return false
	}
	return true
}

// CanAccessPremium reports whether the membership level grants premium facilities.
func (m *Member) CanAccessPremium() bool {
	switch m.Membership.Level {
	case LevelPremium, LevelPersonalTraining:
		return true
	}
	return false
}

func (m *Member) String() string {
	return fmt.Sprintf("%s (Ηλικία: %d, ID: %s)", m.FullName, m.Age, m.DigitalID)
}
