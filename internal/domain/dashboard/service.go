package dashboard

import (
	"context"
)

// DashboardService assembles the read-only analytics payloads.
type DashboardService interface {
	// Company builds the admin/HR analytics view. Reviewer roles only.
	Company(ctx context.Context) (CompanyDashboardResponse, error)

	// Employee builds the personal snapshot for the authenticated
	// employee.
	Employee(ctx context.Context) (EmployeeDashboardResponse, error)
}
