package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyPunchedIn      = errors.New("you have already punched in today")
	ErrNotPunchedIn          = errors.New("you have not punched in yet")
	ErrAlreadyPunchedOut     = errors.New("you have already punched out")
	ErrPunchOutBeforePunchIn = errors.New("punch-out must be after punch-in")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnauthorized   = errors.New("unauthorized to access this attendance record")
)
