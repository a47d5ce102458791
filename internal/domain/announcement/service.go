package announcement

import (
	"context"
)

// AnnouncementService covers company-wide broadcasts. Posting is
// restricted to HR and admin; reading is open to everyone.
type AnnouncementService interface {
	// Post publishes a new announcement, retiring the previous one.
	Post(ctx context.Context, req PostRequest) (Response, error)

	// Latest returns the active announcement; nil when none has been
	// posted.
	Latest(ctx context.Context) (*Response, error)
}
