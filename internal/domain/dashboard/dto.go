package dashboard

// ========== COMPANY DASHBOARD ==========

// CompanyDashboardResponse is the combined payload for the admin/HR
// analytics view. Everything is recomputed per request.
type CompanyDashboardResponse struct {
	TotalEmployees       int64                    `json:"total_employees"`
	PendingLeaves        int64                    `json:"pending_leaves"`
	AttendancePercentage float64                  `json:"attendance_percentage"`
	Departments          []DepartmentCount        `json:"departments"`
	LeaveTypes           []LeaveTypeCount         `json:"leave_types"`
	EmployeeStats        []EmployeePerformanceRow `json:"employee_stats"`
	Heatmap              []DailyPresenceCount     `json:"heatmap"`
}

// DepartmentCount is one bar of the employees-by-department chart.
type DepartmentCount struct {
	Department string `json:"department"`
	Employees  int64  `json:"employees"`
}

// LeaveTypeCount is one slice of the approved-leave distribution.
type LeaveTypeCount struct {
	LeaveType string `json:"leave_type"`
	Count     int64  `json:"count"`
}

// EmployeePerformanceRow pairs an employee's attendance percentage with
// their approved leave days for the scatter view.
type EmployeePerformanceRow struct {
	EmployeeID           string  `json:"employee_id"`
	FullName             string  `json:"full_name"`
	Department           string  `json:"department"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	ApprovedLeaveDays    int64   `json:"approved_leave_days"`
	AverageWorkedHours   float64 `json:"average_worked_hours"`
}

// DailyPresenceCount is one cell of the company heatmap: how many
// employees were present on a day.
type DailyPresenceCount struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the personal snapshot for a logged-in
// employee.
type EmployeeDashboardResponse struct {
	EmployeeID           string           `json:"employee_id"`
	AttendancePercentage float64          `json:"attendance_percentage"` // current month, present days / day of month
	PendingLeaves        int64            `json:"pending_leaves"`
	RecentLeaves         []RecentLeaveRow `json:"recent_leaves"`
}

// RecentLeaveRow is one line of the five-most-recent leave list.
type RecentLeaveRow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Status    string `json:"status"`
}
