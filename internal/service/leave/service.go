package leave

import (
	"context"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/leave"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/letter"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/metrics"
)

// Annual entitlement per leave type. Types not listed carry no
// entitlement and are tracked as usage only.
var entitlements = map[leave.LeaveType]int{
	leave.TypeCasual: 10,
	leave.TypeSick:   8,
	leave.TypeEarned: 12,
}

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	letterClient *letter.Client
}

func NewLeaveService(db *database.DB, repo leave.LeaveRequestRepository, letterClient *letter.Client) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: repo,
		letterClient:           letterClient,
	}
}

// Submit implements leave.LeaveService. Validation runs before any
// write; a reason carrying the drafting failure marker never reaches
// the store.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	leaveType, _ := leave.ParseLeaveType(req.LeaveType)
	startDayType, _ := leave.ParseDayType(req.StartDayType)
	endDayType, _ := leave.ParseDayType(req.EndDayType)
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.Create(ctx, leave.Request{
		EmployeeID:   identity.EmployeeID,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		StartDayType: startDayType,
		EndDayType:   endDayType,
		Reason:       req.Reason,
		Attachment:   req.Attachment,
		Status:       leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	metrics.LeaveSubmissions.WithLabelValues(string(leaveType)).Inc()
	return leave.NewRequestResponse(created), nil
}

// Review implements leave.LeaveService. The decision is write-once:
// the update only matches a still-pending row, so a raced second
// review reports ErrAlreadyReviewed instead of overwriting.
func (s *LeaveServiceImpl) Review(ctx context.Context, req leave.ReviewRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if !identity.IsReviewer() {
		return leave.RequestResponse{}, leave.ErrReviewerRequired
	}

	current, err := s.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if current.Status.Terminal() {
		return leave.RequestResponse{}, leave.ErrAlreadyReviewed
	}

	status, _ := leave.ParseStatus(req.Decision)

	updated, err := s.UpdateStatus(ctx, req.RequestID, status, identity.EmployeeID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if !updated {
		return leave.RequestResponse{}, leave.ErrAlreadyReviewed
	}

	reviewed, err := s.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	metrics.LeaveReviews.WithLabelValues(string(status)).Inc()
	return leave.NewRequestResponse(reviewed), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Non-reviewers only ever see their own requests.
	if !identity.IsReviewer() {
		filter.EmployeeID = identity.EmployeeID
	}

	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewRequestResponse(req))
	}

	return responses, nil
}

// DraftReason implements leave.LeaveService. The draft is returned as
// is, failure marker included; the caller decides whether to keep it,
// and Submit rejects it if the marker is still there.
func (s *LeaveServiceImpl) DraftReason(ctx context.Context, req leave.DraftReasonRequest) (leave.DraftReasonResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DraftReasonResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return leave.DraftReasonResponse{}, err
	}

	reason := s.letterClient.Draft(ctx, req.Prompt, identity.Username)
	failed := leave.HasErrorSentinel(reason)

	if failed {
		metrics.LetterDrafts.WithLabelValues(metrics.OutcomeError).Inc()
	} else {
		metrics.LetterDrafts.WithLabelValues(metrics.OutcomeOK).Inc()
	}

	return leave.DraftReasonResponse{Reason: reason, Failed: failed}, nil
}

// Balance implements leave.LeaveService. Remaining entitlement is
// recomputed from approved requests on each call.
func (s *LeaveServiceImpl) Balance(ctx context.Context) (leave.BalanceResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	approved, err := s.CountApprovedByType(ctx, identity.EmployeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	balances := make(map[string]int, len(entitlements))
	for leaveType, entitled := range entitlements {
		balances[string(leaveType)] = entitled - approved[leaveType]
	}

	return leave.BalanceResponse{
		EmployeeID: identity.EmployeeID,
		Balances:   balances,
	}, nil
}
