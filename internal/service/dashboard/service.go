package dashboard

import (
	"context"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
)

// heatmapWindowDays is how far back the company presence heatmap looks.
const heatmapWindowDays = 30

// recentLeavesLimit caps the personal recent-leave list.
const recentLeavesLimit = 5

type DashboardServiceImpl struct {
	db *database.DB
	dashboard.DashboardRepository
	location *time.Location

	now func() time.Time
}

func NewDashboardService(db *database.DB, repo dashboard.DashboardRepository, location *time.Location) dashboard.DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardServiceImpl{
		db:                  db,
		DashboardRepository: repo,
		location:            location,
		now:                 time.Now,
	}
}

// Company implements dashboard.DashboardService. The independent
// aggregates are fanned out concurrently; any failure cancels the rest.
func (s *DashboardServiceImpl) Company(ctx context.Context) (dashboard.CompanyDashboardResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return dashboard.CompanyDashboardResponse{}, err
	}
	if !identity.IsReviewer() {
		return dashboard.CompanyDashboardResponse{}, user.ErrReviewerAccessRequired
	}

	var resp dashboard.CompanyDashboardResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resp.TotalEmployees, err = s.CountEmployees(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.PendingLeaves, err = s.CountPendingLeaves(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.AttendancePercentage, err = s.OverallAttendancePercentage(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.Departments, err = s.EmployeesByDepartment(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.LeaveTypes, err = s.ApprovedLeavesByType(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.EmployeeStats, err = s.EmployeePerformance(gCtx)
		return err
	})

	g.Go(func() error {
		since := s.today().AddDate(0, 0, -heatmapWindowDays)
		var err error
		resp.Heatmap, err = s.DailyPresenceCounts(gCtx, since)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.CompanyDashboardResponse{}, err
	}

	return resp, nil
}

// Employee implements dashboard.DashboardService. Attendance percentage
// is the present days of the current month over the days elapsed so far.
func (s *DashboardServiceImpl) Employee(ctx context.Context) (dashboard.EmployeeDashboardResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	resp := dashboard.EmployeeDashboardResponse{EmployeeID: identity.EmployeeID}

	today := s.today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.location)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		presentDays, err := s.PresentDaysInRange(gCtx, identity.EmployeeID, monthStart, today.AddDate(0, 0, 1))
		if err != nil {
			return err
		}
		resp.AttendancePercentage = 100 * float64(presentDays) / float64(today.Day())
		return nil
	})

	g.Go(func() error {
		var err error
		resp.PendingLeaves, err = s.CountPendingLeavesByEmployee(gCtx, identity.EmployeeID)
		return err
	})

	g.Go(func() error {
		var err error
		resp.RecentLeaves, err = s.DashboardRepository.RecentLeaves(gCtx, identity.EmployeeID, recentLeavesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	return resp, nil
}

func (s *DashboardServiceImpl) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}
