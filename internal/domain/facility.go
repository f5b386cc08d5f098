package domain

import "fmt"

// Facility is a physical area of the gym (pool, sauna, weights room...).
type Facility struct {
	Name        string `json:"name"`
	PremiumOnly bool   `json:"premiumOnly"`
}

// NewFacility returns a facility open to every membership level.
func NewFacility(name string) Facility {
	return Facility{Name: name}
}

// Admits reports whether the member may use the facility.
func (f Facility) Admits(m *Member) bool {
	if !f.PremiumOnly {
		return true
	}
	return m != nil && m.CanAccessPremium()
}

func (f Facility) String() string {
	label := "Basic"
	if f.PremiumOnly {
		label = "Premium"
	}
	return fmt.Sprintf("%s (%s)", f.Name, label)
}
