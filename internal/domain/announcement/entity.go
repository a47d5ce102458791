package announcement

import "time"

// Announcement is a company-wide broadcast. At most one row is active;
// posting a new one deactivates its predecessor.
type Announcement struct {
	ID       string
	PostedBy string
	Message  string
	IsActive bool
	PostedAt time.Time
}
