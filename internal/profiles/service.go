package profiles

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"profile-backend/internal/shared/metrics"
)

// Service contains business logic for profiles.
type Service struct {
	Repo ProfilesRepo
}

// Create assigns identity and creation time, then persists the profile.
func (s *Service) Create(ctx context.Context, name string, age float64, bio, imageURL string) (Profile, error) {
	name = strings.TrimSpace(name)
	bio = strings.TrimSpace(bio)
	imageURL = strings.TrimSpace(imageURL)
	if name == "" || bio == "" || imageURL == "" {
		return Profile{}, ErrInvalidInput
	}

	p := Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Age:       age,
		Bio:       bio,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}

	metrics.IncProfileCreated()
	return p, nil
}

// GetByID returns the profile with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	if strings.TrimSpace(id) == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}
