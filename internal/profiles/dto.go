package profiles

import (
	"strings"
	"time"
)

// CreateProfileRequest carries a submitted profile. Pointer fields distinguish
// absent keys from zero values, so an age of 0 passes validation.
type CreateProfileRequest struct {
	Name     *string  `json:"name"`
	Age      *float64 `json:"age"`
	Bio      *string  `json:"bio"`
	ImageURL *string  `json:"imageUrl"`
}

func (r CreateProfileRequest) missingFields() []string {
	var missing []string
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		missing = append(missing, "name")
	}
	if r.Age == nil {
		missing = append(missing, "age")
	}
	if r.Bio == nil || strings.TrimSpace(*r.Bio) == "" {
		missing = append(missing, "bio")
	}
	if r.ImageURL == nil || strings.TrimSpace(*r.ImageURL) == "" {
		missing = append(missing, "imageUrl")
	}
	return missing
}

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       float64   `json:"age"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Bio:       p.Bio,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}
