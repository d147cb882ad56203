package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Gender represents user gender (matches user_gender enum)
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User represents a user account with profile and matching preferences
type User struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Email  string    `db:"email" json:"email"`
	Name   string    `db:"name" json:"name"`
	Age    int       `db:"age" json:"age"`
	Gender Gender    `db:"gender" json:"gender"`

	// Matching preferences
	MinAgePref  int            `db:"min_age_pref" json:"min_age_pref"`
	MaxAgePref  int            `db:"max_age_pref" json:"max_age_pref"`
	GenderPrefs pq.StringArray `db:"gender_prefs" json:"gender_prefs"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AcceptsGender reports whether the user's preferences admit the given gender.
func (u *User) AcceptsGender(g Gender) bool {
	for _, pref := range u.GenderPrefs {
		if Gender(pref) == g {
			return true
		}
	}
	return false
}

// AcceptsAge reports whether the user's preferences admit the given age.
func (u *User) AcceptsAge(age int) bool {
	return age >= u.MinAgePref && age <= u.MaxAgePref
}

// ValidGenders returns genders accepted in profiles and preferences
func ValidGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// IsValidGender checks if gender is valid
func IsValidGender(gender string) bool {
	for _, g := range ValidGenders() {
		if string(g) == gender {
			return true
		}
	}
	return false
}
