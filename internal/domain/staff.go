package domain

import "fmt"

// Trainer is not linked to members or schedules.
type Trainer struct {
	FullName  string `json:"fullName"`
	Specialty string `json:"specialty"`
}

func (t Trainer) String() string {
	return fmt.Sprintf("Trainer: %s - %s", t.FullName, t.Specialty)
}

type Administrator struct {
	FullName string `json:"fullName"`
}

func (a Administrator) String() string {
	return fmt.Sprintf("Admin: %s", a.FullName)
}
