package person_test

import (
	"testing"
	"time"

	"clubplan/internal/domain/person"
)

var now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// TestPerson_EligibleForRoster covers the dropdown filter: directory account
// plus active/candidate status or a recent record update.
func TestPerson_EligibleForRoster(t *testing.T) {
	tests := []struct {
		name string
		p    person.Person
		want bool
	}{
		{
			name: "active member",
			p:    person.Person{LdapID: "1001", Name: "Anna", Status: person.StatusActive, UpdatedAt: now.AddDate(-1, 0, 0)},
			want: true,
		},
		{
			name: "candidate",
			p:    person.Person{LdapID: "1002", Name: "Ben", Status: person.StatusCandidate, UpdatedAt: now.AddDate(-1, 0, 0)},
			want: true,
		},
		{
			name: "veteran touched recently",
			p:    person.Person{LdapID: "1003", Name: "Clara", Status: person.StatusVeteran, UpdatedAt: now.AddDate(0, -1, 0)},
			want: true,
		},
		{
			name: "veteran touched long ago",
			p:    person.Person{LdapID: "1004", Name: "Dirk", Status: person.StatusVeteran, UpdatedAt: now.AddDate(0, -4, 0)},
			want: false,
		},
		{
			name: "no directory account",
			p:    person.Person{Name: "Eva", Status: person.StatusActive, UpdatedAt: now},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.EligibleForRoster(now); got != tt.want {
				t.Errorf("EligibleForRoster() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPerson_Validate tests validation of Person.
func TestPerson_Validate(t *testing.T) {
	p := person.Person{Name: "Anna", Status: person.StatusActive}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	p.Status = "unbekannt"
	if err := p.Validate(); err == nil {
		t.Error("expected error for invalid status")
	}
	p = person.Person{Status: person.StatusActive}
	if err := p.Validate(); err == nil {
		t.Error("expected error for empty name")
	}
}
