package leave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmspro/hrms-backend-go/internal/domain/leave"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/letter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLeaveRepo struct {
	requests map[string]*leave.Request
}

func newMemoryLeaveRepo() *memoryLeaveRepo {
	return &memoryLeaveRepo{requests: map[string]*leave.Request{}}
}

func (m *memoryLeaveRepo) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	request.ID = fmt.Sprintf("req-%d", len(m.requests)+1)
	request.Status = leave.StatusPending
	request.AppliedAt = time.Now()
	m.requests[request.ID] = &request
	return request, nil
}

func (m *memoryLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	req, ok := m.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return *req, nil
}

func (m *memoryLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range m.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(req.Status) != filter.Status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (m *memoryLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewedBy string) (bool, error) {
	req, ok := m.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return false, nil
	}
	now := time.Now()
	req.Status = status
	req.ReviewedBy = &reviewedBy
	req.ReviewedAt = &now
	return true, nil
}

func (m *memoryLeaveRepo) CountApprovedByType(ctx context.Context, employeeID string) (map[leave.LeaveType]int, error) {
	counts := map[leave.LeaveType]int{}
	for _, req := range m.requests {
		if req.EmployeeID == employeeID && req.Status == leave.StatusApproved {
			counts[req.LeaveType]++
		}
	}
	return counts, nil
}

func authedContext(t *testing.T, employeeID string, role user.Role) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"username":    "u." + employeeID,
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func validSubmit() leave.SubmitRequest {
	return leave.SubmitRequest{
		LeaveType:    "casual",
		StartDate:    "2026-03-09",
		EndDate:      "2026-03-11",
		StartDayType: "full_day",
		EndDayType:   "full_day",
		Reason:       "Attending a family function.",
	}
}

func TestSubmit(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := &LeaveServiceImpl{LeaveRequestRepository: repo}
	ctx := authedContext(t, "E002", user.RoleEmployee)

	resp, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	assert.Equal(t, "E002", resp.EmployeeID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-03-09", resp.StartDate)
}

func TestSubmit_ValidationWritesNothing(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := &LeaveServiceImpl{LeaveRequestRepository: repo}
	ctx := authedContext(t, "E002", user.RoleEmployee)

	req := validSubmit()
	req.Reason = "---ERROR: could not connect---\n\nUser Prompt: two days off"

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)
	assert.Empty(t, repo.requests)
}

func TestReview(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := &LeaveServiceImpl{LeaveRequestRepository: repo}

	created, err := svc.Submit(authedContext(t, "E002", user.RoleEmployee), validSubmit())
	require.NoError(t, err)

	reviewerCtx := authedContext(t, "M001", user.RoleManager)
	resp, err := svc.Review(reviewerCtx, leave.ReviewRequest{RequestID: created.ID, Decision: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, "M001", *resp.ReviewedBy)

	// decisions are write-once
	_, err = svc.Review(reviewerCtx, leave.ReviewRequest{RequestID: created.ID, Decision: "rejected"})
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
}

func TestReview_ReviewerRequired(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := &LeaveServiceImpl{LeaveRequestRepository: repo}

	created, err := svc.Submit(authedContext(t, "E002", user.RoleEmployee), validSubmit())
	require.NoError(t, err)

	_, err = svc.Review(authedContext(t, "E003", user.RoleEmployee), leave.ReviewRequest{RequestID: created.ID, Decision: "approved"})
	assert.ErrorIs(t, err, leave.ErrReviewerRequired)
}

func TestList_EmployeesSeeOnlyTheirOwn(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := &LeaveServiceImpl{LeaveRequestRepository: repo}

	_, err := svc.Submit(authedContext(t, "E002", user.RoleEmployee), validSubmit())
	require.NoError(t, err)
	_, err = svc.Submit(authedContext(t, "E003", user.RoleEmployee), validSubmit())
	require.NoError(t, err)

	// the employee filter is forced even when asking for someone else
	mine, err := svc.List(authedContext(t, "E002", user.RoleEmployee), leave.ListFilter{EmployeeID: "E003"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "E002", mine[0].EmployeeID)

	all, err := svc.List(authedContext(t, "H001", user.RoleHR), leave.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDraftReason_FailureMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := &LeaveServiceImpl{
		LeaveRequestRepository: newMemoryLeaveRepo(),
		letterClient:           letter.New(srv.URL, "llama3", time.Second),
	}

	resp, err := svc.DraftReason(authedContext(t, "E002", user.RoleEmployee), leave.DraftReasonRequest{Prompt: "two days off"})
	require.NoError(t, err)
	assert.True(t, resp.Failed)
	assert.Contains(t, resp.Reason, leave.ErrorSentinel)
}

func TestDraftReason_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "Dear [Manager Name],\n\nRequesting two days off."})
	}))
	defer srv.Close()

	svc := &LeaveServiceImpl{
		LeaveRequestRepository: newMemoryLeaveRepo(),
		letterClient:           letter.New(srv.URL, "llama3", time.Second),
	}

	resp, err := svc.DraftReason(authedContext(t, "E002", user.RoleEmployee), leave.DraftReasonRequest{Prompt: "two days off"})
	require.NoError(t, err)
	assert.False(t, resp.Failed)
}

func TestBalance(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := &LeaveServiceImpl{LeaveRequestRepository: repo}
	ctx := authedContext(t, "E002", user.RoleEmployee)
	reviewerCtx := authedContext(t, "M001", user.RoleManager)

	for i := 0; i < 2; i++ {
		created, err := svc.Submit(ctx, validSubmit())
		require.NoError(t, err)
		_, err = svc.Review(reviewerCtx, leave.ReviewRequest{RequestID: created.ID, Decision: "approved"})
		require.NoError(t, err)
	}

	balance, err := svc.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, balance.Balances["casual"])
	assert.Equal(t, 8, balance.Balances["sick"])
	assert.Equal(t, 12, balance.Balances["earned"])
}
