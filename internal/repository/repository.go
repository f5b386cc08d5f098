package repository

import (
	"alcyxob/gym-registry/internal/domain" // Import our defined domain models
)

// MemberRepository defines the interface for storing members keyed by DigitalID.
type MemberRepository interface {
	// AddMember inserts the member, silently replacing any member with the same DigitalID.
	AddMember(member *domain.Member)
	// GetMember reports false when no member has the given DigitalID.
	GetMember(digitalID string) (*domain.Member, bool)
	// ListMembers returns every stored member exactly once.
	ListMembers() []*domain.Member
}

// FacilityRepository defines the interface for the facility list.
type FacilityRepository interface {
	// AddFacility appends the facility; duplicates are kept.
	AddFacility(facility domain.Facility)
	// ListFacilities returns facilities in insertion order.
	ListFacilities() []domain.Facility
}

// Store is the full registry contract.
type Store interface {
	MemberRepository
	FacilityRepository
}
