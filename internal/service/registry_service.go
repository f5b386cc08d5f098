package service

import (
	"alcyxob/gym-registry/internal/domain"
	"alcyxob/gym-registry/internal/repository" // Import repository package
	"errors"
	"io"
	"log/slog"
)

// --- Error Definitions ---
var (
	ErrParentalConsentRequired = errors.New("member under 18 needs parental consent to register")
	ErrMemberNotFound          = errors.New("member not found")
	ErrNilMember               = errors.New("member cannot be nil")
)

// --- Service Interface ---
type RegistryService interface {
	RegisterMember(member *domain.Member) error
	GetMember(digitalID string) (*domain.Member, error)
	ListMembers() []*domain.Member

	AddFacility(facility domain.Facility)
	ListFacilities() []domain.Facility

	// AccessibleFacilities lists the facilities the member may enter, in registry order.
	AccessibleFacilities(digitalID string) ([]domain.Facility, error)
}

// --- Service Implementation ---

// registryService implements the RegistryService interface.
type registryService struct {
	store  repository.Store
	logger *slog.Logger
}

// NewRegistryService creates a new instance of registryService.
// A nil logger discards output.
func NewRegistryService(store repository.Store, logger *slog.Logger) RegistryService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &registryService{
		store:  store,
		logger: logger.With("component", "registry"),
	}
}

// RegisterMember stores the member if the registration rule allows it.
// An existing member with the same DigitalID is replaced.
func (s *registryService) RegisterMember(member *domain.Member) error {
	if member == nil {
		return ErrNilMember
	}
	if !member.CanRegister() {
		s.logger.Warn("registration refused",
			"digital_id", member.DigitalID,
			"age", member.Age,
			"parental_consent", member.ParentalConsent,
		)
		return ErrParentalConsentRequired
	}

	if _, exists := s.store.GetMember(member.DigitalID); exists {
		s.logger.Info("replacing member", "digital_id", member.DigitalID)
	}
	s.store.AddMember(member)
	s.logger.Debug("member registered", "digital_id", member.DigitalID, "level", member.Membership.Level)
	return nil
}

// GetMember maps a lookup miss to ErrMemberNotFound.
func (s *registryService) GetMember(digitalID string) (*domain.Member, error) {
	member, ok := s.store.GetMember(digitalID)
	if !ok {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *registryService) ListMembers() []*domain.Member {
	return s.store.ListMembers()
}

func (s *registryService) AddFacility(facility domain.Facility) {
	s.store.AddFacility(facility)
	s.logger.Debug("facility added", "name", facility.Name, "premium_only", facility.PremiumOnly)
}

func (s *registryService) ListFacilities() []domain.Facility {
	return s.store.ListFacilities()
}

func (s *registryService) AccessibleFacilities(digitalID string) ([]domain.Facility, error) {
	member, err := s.GetMember(digitalID)
	if err != nil {
		return nil, err
	}

	var allowed []domain.Facility
	for _, f := range s.store.ListFacilities() {
		if f.Admits(member) {
			allowed = append(allowed, f)
		}
	}
	return allowed, nil
}
