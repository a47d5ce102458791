package communication

import (
	"context"

	"github.com/hrmspro/hrms-backend-go/internal/domain/announcement"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/sse"
)

type AnnouncementServiceImpl struct {
	db *database.DB
	announcement.AnnouncementRepository
	hub *sse.Hub
}

func NewAnnouncementService(db *database.DB, repo announcement.AnnouncementRepository, hub *sse.Hub) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		db:                     db,
		AnnouncementRepository: repo,
		hub:                    hub,
	}
}

// Post implements announcement.AnnouncementService. HR and admin only.
// Publishing retires the previous announcement and pushes the new one
// to every open event stream.
func (s *AnnouncementServiceImpl) Post(ctx context.Context, req announcement.PostRequest) (announcement.Response, error) {
	if err := req.Validate(); err != nil {
		return announcement.Response{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return announcement.Response{}, err
	}
	if identity.Role != user.RoleHR && identity.Role != user.RoleAdmin {
		return announcement.Response{}, user.ErrInsufficientPermissions
	}

	published, err := s.Publish(ctx, announcement.Announcement{
		PostedBy: identity.EmployeeID,
		Message:  req.Message,
	})
	if err != nil {
		return announcement.Response{}, err
	}

	resp := announcement.NewResponse(published)
	s.hub.Broadcast(sse.Event{
		Event: sse.EventAnnouncement,
		Data:  resp,
	})

	return resp, nil
}

// Latest implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Latest(ctx context.Context) (*announcement.Response, error) {
	latest, err := s.AnnouncementRepository.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}

	resp := announcement.NewResponse(*latest)
	return &resp, nil
}
