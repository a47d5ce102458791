package announcement

import (
	"context"
)

// AnnouncementRepository defines data access for broadcasts.
type AnnouncementRepository interface {
	// Publish deactivates every active announcement and inserts the new
	// one as active, in one transaction.
	Publish(ctx context.Context, a Announcement) (Announcement, error)

	// Latest returns the most recent active announcement; nil when none.
	Latest(ctx context.Context) (*Announcement, error)
}
