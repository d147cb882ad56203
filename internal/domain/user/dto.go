package user

import "github.com/google/uuid"

// UpdatePreferencesRequest for PUT /me/preferences
type UpdatePreferencesRequest struct {
	MinAgePref  int      `json:"min_age_pref" validate:"required,gte=18,lte=120"`
	MaxAgePref  int      `json:"max_age_pref" validate:"required,gte=18,lte=120,gtefield=MinAgePref"`
	GenderPrefs []string `json:"gender_prefs" validate:"required,min=1,dive,gender"`
}

// ProfileResponse represents a user in API responses
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Gender      Gender    `json:"gender"`
	MinAgePref  int       `json:"min_age_pref"`
	MaxAgePref  int       `json:"max_age_pref"`
	GenderPrefs []string  `json:"gender_prefs"`
}

// ProfileFromEntity converts entity to response
func ProfileFromEntity(u *User) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Age:         u.Age,
		Gender:      u.Gender,
		MinAgePref:  u.MinAgePref,
		MaxAgePref:  u.MaxAgePref,
		GenderPrefs: []string(u.GenderPrefs),
	}
}
