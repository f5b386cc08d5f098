// Package memory holds the in-process registry. Nothing survives a restart.
package memory

import (
	"alcyxob/gym-registry/internal/domain"
	"alcyxob/gym-registry/internal/repository"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DataStore implements repository.Store with an insertion-ordered member index
// and a plain facility slice.
//
// DataStore is not safe for concurrent use. Callers sharing it between
// goroutines must guard every call with their own lock.
type DataStore struct {
	members    *orderedmap.OrderedMap[string, *domain.Member]
	facilities []domain.Facility
}

var _ repository.Store = (*DataStore)(nil)

// NewDataStore creates an empty registry.
func NewDataStore() *DataStore {
	return &DataStore{
		members:    orderedmap.New[string, *domain.Member](),
		facilities: []domain.Facility{},
	}
}

// --- Members ---

// AddMember stores the member under its DigitalID. An existing entry with the
// same ID keeps its position in ListMembers but its value is replaced.
func (s *DataStore) AddMember(member *domain.Member) {
	s.members.Set(member.DigitalID, member)
}

// GetMember retrieves a member by DigitalID.
func (s *DataStore) GetMember(digitalID string) (*domain.Member, bool) {
	return s.members.Get(digitalID)
}

// ListMembers returns members ordered by the first insertion of their ID.
func (s *DataStore) ListMembers() []*domain.Member {
	out := make([]*domain.Member, 0, s.members.Len())
	for pair := s.members.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (s *DataStore) MemberCount() int {
	return s.members.Len()
}

// --- Facilities ---

func (s *DataStore) AddFacility(facility domain.Facility) {
	s.facilities = append(s.facilities, facility)
}

// ListFacilities returns a copy; appending to it does not change the store.
func (s *DataStore) ListFacilities() []domain.Facility {
	return slices.Clone(s.facilities)
}

func (s *DataStore) FacilityCount() int {
	return len(s.facilities)
}
