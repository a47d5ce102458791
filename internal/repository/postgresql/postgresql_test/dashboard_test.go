package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmspro/hrms-backend-go/internal/domain/leave"
	"github.com/hrmspro/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPresentDay(t *testing.T, repo attendance.AttendanceRepository, employeeID string, date time.Time, hours float64) {
	t.Helper()
	ctx := context.Background()

	_, inserted, err := repo.CreateIfAbsent(ctx, attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		PunchIn:    date.Add(9 * time.Hour),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	require.True(t, inserted)

	closed, err := repo.ClosePunch(ctx, employeeID, date, date.Add(9*time.Hour).Add(time.Duration(hours*float64(time.Hour))), hours)
	require.NoError(t, err)
	require.True(t, closed)
}

func TestDashboardRepository_Counts(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	createTestUser(t, db, "dash.one", "E130", "employee")
	createTestUser(t, db, "dash.two", "E131", "manager")
	createTestUser(t, db, "dash.admin", "A130", "admin")

	ctx := context.Background()
	repo := postgresql.NewDashboardRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	createTestLeaveRequest(t, leaveRepo, "E130", leave.TypeCasual)
	createTestLeaveRequest(t, leaveRepo, "E131", leave.TypeSick)

	// admins are operators, not headcount
	employees, err := repo.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), employees)

	pending, err := repo.CountPendingLeaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	mine, err := repo.CountPendingLeavesByEmployee(ctx, "E130")
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine)
}

func TestDashboardRepository_EmployeePerformance(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	u := createTestUser(t, db, "perf.tester", "E132", "employee")
	reviewer := createTestUser(t, db, "perf.reviewer", "M130", "manager")
	createTestUser(t, db, "perf.admin", "A131", "admin")

	ctx := context.Background()
	attRepo := postgresql.NewAttendanceRepository(db)
	createPresentDay(t, attRepo, u.EmployeeID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 8)
	createPresentDay(t, attRepo, u.EmployeeID, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 7)

	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	req := createTestLeaveRequest(t, leaveRepo, u.EmployeeID, leave.TypeCasual) // 3 days
	updated, err := leaveRepo.UpdateStatus(ctx, req.ID, leave.StatusApproved, reviewer.EmployeeID)
	require.NoError(t, err)
	require.True(t, updated)

	repo := postgresql.NewDashboardRepository(db)
	rows, err := repo.EmployeePerformance(ctx)
	require.NoError(t, err)

	// the admin stays out; the reviewer appears with zero figures
	require.Len(t, rows, 2)
	assert.Equal(t, u.EmployeeID, rows[0].EmployeeID)
	assert.Greater(t, rows[0].AttendancePercentage, 0.0)
	assert.LessOrEqual(t, rows[0].AttendancePercentage, 100.0)
	assert.Equal(t, int64(3), rows[0].ApprovedLeaveDays)
	assert.Equal(t, 7.5, rows[0].AverageWorkedHours)

	assert.Equal(t, reviewer.EmployeeID, rows[1].EmployeeID)
	assert.Zero(t, rows[1].AttendancePercentage)
	assert.Zero(t, rows[1].ApprovedLeaveDays)
}

func TestDashboardRepository_AttendanceAggregates(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	a := createTestUser(t, db, "agg.one", "E133", "employee")
	b := createTestUser(t, db, "agg.two", "E134", "employee")

	ctx := context.Background()
	attRepo := postgresql.NewAttendanceRepository(db)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	createPresentDay(t, attRepo, a.EmployeeID, day, 8)
	createPresentDay(t, attRepo, b.EmployeeID, day, 8)
	createPresentDay(t, attRepo, a.EmployeeID, day.AddDate(0, 0, 1), 8)

	pct, err := postgresql.NewDashboardRepository(db).OverallAttendancePercentage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, pct)

	counts, err := postgresql.NewDashboardRepository(db).DailyPresenceCounts(ctx, day)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "2026-03-02", counts[0].Date)
	assert.Equal(t, int64(2), counts[0].Present)
	assert.Equal(t, "2026-03-03", counts[1].Date)
	assert.Equal(t, int64(1), counts[1].Present)

	n, err := postgresql.NewDashboardRepository(db).PresentDaysInRange(ctx, a.EmployeeID, day, day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDashboardRepository_Distributions(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	u := createTestUser(t, db, "dist.one", "E135", "employee")
	reviewer := createTestUser(t, db, "dist.reviewer", "M131", "hr")

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	req := createTestLeaveRequest(t, leaveRepo, u.EmployeeID, leave.TypeSick)
	updated, err := leaveRepo.UpdateStatus(ctx, req.ID, leave.StatusApproved, reviewer.EmployeeID)
	require.NoError(t, err)
	require.True(t, updated)
	createTestLeaveRequest(t, leaveRepo, u.EmployeeID, leave.TypeCasual) // stays pending

	repo := postgresql.NewDashboardRepository(db)

	byType, err := repo.ApprovedLeavesByType(ctx)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, string(leave.TypeSick), byType[0].LeaveType)
	assert.Equal(t, int64(1), byType[0].Count)

	byDept, err := repo.EmployeesByDepartment(ctx)
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	assert.Equal(t, "Unassigned", byDept[0].Department)
	assert.Equal(t, int64(2), byDept[0].Employees)
}
