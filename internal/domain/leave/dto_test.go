package leave

import (
	"testing"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() SubmitRequest {
	return SubmitRequest{
		LeaveType:    "casual",
		StartDate:    "2026-03-02",
		EndDate:      "2026-03-04",
		StartDayType: "full_day",
		EndDayType:   "full_day",
		Reason:       "Family function out of town.",
	}
}

func TestSubmitRequestValidate(t *testing.T) {
	req := validSubmit()
	assert.NoError(t, req.Validate())
}

func TestSubmitRequestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"unknown leave type", func(r *SubmitRequest) { r.LeaveType = "sabbatical" }, "leave_type"},
		{"bad start date", func(r *SubmitRequest) { r.StartDate = "02-03-2026" }, "start_date"},
		{"bad end date", func(r *SubmitRequest) { r.EndDate = "tomorrow" }, "end_date"},
		{"start after end", func(r *SubmitRequest) { r.StartDate = "2026-03-05" }, "start_date"},
		{"unknown day type", func(r *SubmitRequest) { r.StartDayType = "morning" }, "start_day_type"},
		{"empty reason", func(r *SubmitRequest) { r.Reason = "   " }, "reason"},
		{"reason carries sentinel", func(r *SubmitRequest) { r.Reason = "---ERROR: model unavailable" }, "reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmit()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestSubmitRequestValidate_SentinelAnywhereInReason(t *testing.T) {
	req := validSubmit()
	req.Reason = "Dear team,\n---ERROR: connection refused\nplease approve"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "reason")
}

func TestReviewRequestValidate(t *testing.T) {
	req := ReviewRequest{RequestID: "some-id", Decision: "approved"}
	assert.NoError(t, req.Validate())

	req.Decision = "rejected"
	assert.NoError(t, req.Validate())

	req.Decision = "pending"
	assert.Error(t, req.Validate())

	req = ReviewRequest{Decision: "approved"}
	assert.Error(t, req.Validate())
}

func TestListFilterValidate(t *testing.T) {
	f := ListFilter{}
	assert.NoError(t, f.Validate())

	f = ListFilter{Status: "approved", Limit: 10}
	assert.NoError(t, f.Validate())

	f = ListFilter{Status: "maybe"}
	assert.Error(t, f.Validate())

	f = ListFilter{Limit: -1}
	assert.Error(t, f.Validate())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestHasErrorSentinel(t *testing.T) {
	assert.True(t, HasErrorSentinel("---ERROR: something broke"))
	assert.True(t, HasErrorSentinel("prefix text ---ERROR: embedded"))
	assert.False(t, HasErrorSentinel("a perfectly normal reason"))
	assert.False(t, HasErrorSentinel("ERROR: without the dashes"))
}
