package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/go-chi/jwtauth/v5"
)

// recentLeaveCount is how many leave requests the employee dashboard shows
const recentLeaveCount = 5

type DashboardServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
}

func NewDashboardService(employeeRepo employee.Repository, attendanceRepo attendance.Repository, leaveRepo leave.Repository) dashboard.Service {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EmployeeDashboard implements dashboard.Service.
func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context) (dashboard.EmployeeDashboard, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.EmployeeDashboard{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, _ := claims["employee_id"].(string)

	entity, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboard{}, err
	}

	result := dashboard.EmployeeDashboard{
		Employee:     employee.ToResponse(entity),
		RecentLeaves: []leave.RequestResponse{},
		LeaveBalance: entity.LeaveBalance,
	}

	todayRec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today())
	if err == nil {
		resp := attendance.ToResponse(todayRec)
		result.TodayAttendance = &resp
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return dashboard.EmployeeDashboard{}, err
	}

	recentLeaves, err := s.leaveRepo.ListRecentByEmployee(ctx, employeeID, recentLeaveCount)
	if err != nil {
		return dashboard.EmployeeDashboard{}, err
	}
	for _, req := range recentLeaves {
		result.RecentLeaves = append(result.RecentLeaves, leave.ToResponse(req))
	}

	now := time.Now().UTC()
	monthRecords, err := s.attendanceRepo.ListByMonth(ctx, employeeID, now.Month(), now.Year())
	if err != nil {
		return dashboard.EmployeeDashboard{}, err
	}
	for _, rec := range monthRecords {
		result.MonthSummary.TotalDays++
		switch rec.Status {
		case attendance.StatusPresent:
			result.MonthSummary.Present++
		case attendance.StatusAbsent:
			result.MonthSummary.Absent++
		case attendance.StatusHalfDay:
			result.MonthSummary.HalfDay++
		case attendance.StatusLeave:
			result.MonthSummary.Leave++
		}
		result.MonthSummary.TotalWorkHours += rec.WorkHours
	}

	return result, nil
}

// AdminDashboard implements dashboard.Service.
func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (dashboard.AdminDashboard, error) {
	employeeCount, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboard{}, err
	}

	todayCounts, err := s.attendanceRepo.CountByDate(ctx, today())
	if err != nil {
		return dashboard.AdminDashboard{}, err
	}

	pendingLeaves, err := s.leaveRepo.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return dashboard.AdminDashboard{}, err
	}

	return dashboard.AdminDashboard{
		EmployeeCount: employeeCount,
		PresentToday:  todayCounts[attendance.StatusPresent] + todayCounts[attendance.StatusHalfDay],
		AbsentToday:   todayCounts[attendance.StatusAbsent],
		OnLeaveToday:  todayCounts[attendance.StatusLeave],
		PendingLeaves: pendingLeaves,
	}, nil
}
