package leave

import (
	"strings"
	"time"
)

// ErrorSentinel is the prefix the letter-drafting collaborator embeds in
// its output when the remote call fails. Submit must reject any reason
// carrying it so a failed draft never reaches the store.
const ErrorSentinel = "---ERROR:"

type LeaveType string

const (
	TypeCasual    LeaveType = "casual"
	TypeSick      LeaveType = "sick"
	TypeEarned    LeaveType = "earned"
	TypeMaternity LeaveType = "maternity"
	TypePaternity LeaveType = "paternity"
	TypeLossOfPay LeaveType = "loss_of_pay"
)

// AllLeaveTypes returns the closed set of leave types.
func AllLeaveTypes() []LeaveType {
	return []LeaveType{
		TypeCasual,
		TypeSick,
		TypeEarned,
		TypeMaternity,
		TypePaternity,
		TypeLossOfPay,
	}
}

// ParseLeaveType maps a string onto the closed type enum.
func ParseLeaveType(s string) (LeaveType, bool) {
	switch LeaveType(s) {
	case TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypePaternity, TypeLossOfPay:
		return LeaveType(s), true
	}
	return "", false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus maps a string onto the closed status enum.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// DayType qualifies whether the boundary days are full or half days.
type DayType string

const (
	DayFull       DayType = "full_day"
	DayFirstHalf  DayType = "first_half"
	DaySecondHalf DayType = "second_half"
)

// ParseDayType maps a string onto the closed day-type enum.
func ParseDayType(s string) (DayType, bool) {
	switch DayType(s) {
	case DayFull, DayFirstHalf, DaySecondHalf:
		return DayType(s), true
	}
	return "", false
}

type Request struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	StartDayType DayType
	EndDayType   DayType
	Reason       string
	Attachment   *string
	Status       Status
	ReviewedBy   *string
	ReviewedAt   *time.Time
	AppliedAt    time.Time

	// Join, populated on reviewer listings
	ApplicantName *string
}

// HasErrorSentinel reports whether the reason carries the drafting
// failure marker anywhere in its text.
func HasErrorSentinel(reason string) bool {
	return strings.Contains(reason, ErrorSentinel)
}
