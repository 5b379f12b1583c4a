package profiles

import "context"

// ProfilesRepo defines persistence operations for profiles.
type ProfilesRepo interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
}
