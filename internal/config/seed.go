package config

import (
	"alcyxob/gym-registry/internal/domain"
	"fmt"
	"time"
)

// SeedConfig lists the records loaded into a fresh registry at startup.
type SeedConfig struct {
	Facilities     []FacilitySeed      `mapstructure:"facilities"`
	Members        []MemberSeed        `mapstructure:"members"`
	Trainers       []TrainerSeed       `mapstructure:"trainers"`
	Administrators []AdministratorSeed `mapstructure:"administrators"`
}

type FacilitySeed struct {
	Name        string `mapstructure:"name"`
	PremiumOnly bool   `mapstructure:"premium_only"`
}

type MemberSeed struct {
	FullName        string         `mapstructure:"full_name"`
	Age             int            `mapstructure:"age"`
	Level           string         `mapstructure:"level"`
	Duration        string         `mapstructure:"duration"`
	StartDate       string         `mapstructure:"start_date"` // YYYY-MM-DD, empty means today
	Active          *bool          `mapstructure:"active"`     // nil means active
	ParentalConsent bool           `mapstructure:"parental_consent"`
	DigitalID       string         `mapstructure:"digital_id"` // empty means generated
	Schedules       []ScheduleSeed `mapstructure:"schedules"`
}

type ScheduleSeed struct {
	DayOfWeek string `mapstructure:"day_of_week"`
	Start     string `mapstructure:"start"` // HH:MM
	End       string `mapstructure:"end"`
}

type TrainerSeed struct {
	FullName  string `mapstructure:"full_name"`
	Specialty string `mapstructure:"specialty"`
}

type AdministratorSeed struct {
	FullName string `mapstructure:"full_name"`
}

// Seed is the domain form of SeedConfig.
type Seed struct {
	Facilities     []domain.Facility
	Members        []*domain.Member
	Trainers       []domain.Trainer
	Administrators []domain.Administrator
}

// Build converts the seed section into domain values. now supplies the start
// date for members that do not set one.
func (c SeedConfig) Build(now time.Time) (*Seed, error) {
	seed := &Seed{}

	for _, f := range c.Facilities {
		seed.Facilities = append(seed.Facilities, domain.Facility{Name: f.Name, PremiumOnly: f.PremiumOnly})
	}

	for i, ms := range c.Members {
		m, err := ms.build(now)
		if err != nil {
			return nil, fmt.Errorf("seed member #%d (%s): %w", i, ms.FullName, err)
		}
		seed.Members = append(seed.Members, m)
	}

	for _, t := range c.Trainers {
		seed.Trainers = append(seed.Trainers, domain.Trainer{FullName: t.FullName, Specialty: t.Specialty})
	}
	for _, a := range c.Administrators {
		seed.Administrators = append(seed.Administrators, domain.Administrator{FullName: a.FullName})
	}

	return seed, nil
}

func (ms MemberSeed) build(now time.Time) (*domain.Member, error) {
	level, err := domain.ParseMembershipLevel(ms.Level)
	if err != nil {
		return nil, err
	}
	duration, err := domain.ParseMembershipDuration(ms.Duration)
	if err != nil {
		return nil, err
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if ms.StartDate != "" {
		start, err = time.Parse(domain.DateLayout, ms.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
	}

	membership := domain.NewMembership(level, duration, start)
	if ms.Active != nil {
		membership.Active = *ms.Active
	}

	member := domain.NewMember(ms.FullName, ms.Age, membership)
	member.ParentalConsent = ms.ParentalConsent
	if ms.DigitalID != "" {
		member.DigitalID = ms.DigitalID
	}

	for _, ss := range ms.Schedules {
		startTime, err := time.Parse(domain.ClockLayout, ss.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule start: %w", err)
		}
		endTime, err := time.Parse(domain.ClockLayout, ss.End)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule end: %w", err)
		}
		member.Schedules = append(member.Schedules, domain.Schedule{
			DayOfWeek: ss.DayOfWeek,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	return member, nil
}
