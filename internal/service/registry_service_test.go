package service

import (
	"alcyxob/gym-registry/internal/domain"
	"alcyxob/gym-registry/internal/repository/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (RegistryService, *memory.DataStore) {
	store := memory.NewDataStore()
	return NewRegistryService(store, nil), store
}

func member(name string, age int, level domain.MembershipLevel) *domain.Member {
	return domain.NewMember(name, age, domain.NewMembership(level, domain.DurationYearly, time.Now()))
}

func TestRegisterMember(t *testing.T) {
	svc, store := newTestService()
	m := member("Giorgos", 35, domain.LevelBasic)

	require.NoError(t, svc.RegisterMember(m))

	got, ok := store.GetMember(m.DigitalID)
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestRegisterMemberRequiresConsentForMinors(t *testing.T) {
	svc, store := newTestService()
	m := member("Ana", 16, domain.LevelBasic)

	err := svc.RegisterMember(m)
	assert.ErrorIs(t, err, ErrParentalConsentRequired)
	assert.Equal(t, 0, store.MemberCount())

	m.ParentalConsent = true
	require.NoError(t, svc.RegisterMember(m))
	assert.Equal(t, 1, store.MemberCount())
}

func TestRegisterNilMember(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.RegisterMember(nil), ErrNilMember)
}

func TestGetMember(t *testing.T) {
	svc, _ := newTestService()
	m := member("Eleni", 22, domain.LevelPremium)
	require.NoError(t, svc.RegisterMember(m))

	got, err := svc.GetMember(m.DigitalID)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = svc.GetMember("nope0000")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRegisterMemberReplacesSameID(t *testing.T) {
	svc, _ := newTestService()
	first := member("First", 30, domain.LevelBasic)
	second := member("Second", 31, domain.LevelPremium)
	second.DigitalID = first.DigitalID

	require.NoError(t, svc.RegisterMember(first))
	require.NoError(t, svc.RegisterMember(second))

	members := svc.ListMembers()
	require.Len(t, members, 1)
	assert.Equal(t, "Second", members[0].FullName)
}

func TestAccessibleFacilities(t *testing.T) {
	svc, _ := newTestService()
	gym := domain.NewFacility("Gym")
	pool := domain.Facility{Name: "Pool", PremiumOnly: true}
	sauna := domain.Facility{Name: "Sauna", PremiumOnly: true}
	for _, f := range []domain.Facility{gym, pool, sauna, gym} {
		svc.AddFacility(f)
	}

	basic := member("Basic", 25, domain.LevelBasic)
	trained := member("PT", 25, domain.LevelPersonalTraining)
	require.NoError(t, svc.RegisterMember(basic))
	require.NoError(t, svc.RegisterMember(trained))

	got, err := svc.AccessibleFacilities(basic.DigitalID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Facility{gym, gym}, got)

	got, err = svc.AccessibleFacilities(trained.DigitalID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Facility{gym, pool, sauna, gym}, got)

	_, err = svc.AccessibleFacilities("unknown1")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListFacilitiesPassThrough(t *testing.T) {
	svc, _ := newTestService()
	assert.Empty(t, svc.ListFacilities())

	svc.AddFacility(domain.NewFacility("Gym"))
	svc.AddFacility(domain.NewFacility("Gym"))
	assert.Len(t, svc.ListFacilities(), 2)
}
