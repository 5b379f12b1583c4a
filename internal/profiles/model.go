package profiles

import "time"

// Profile represents a stored profile card.
type Profile struct {
	ID        string
	Name      string
	Age       float64
	Bio       string
	ImageURL  string
	CreatedAt time.Time
}
