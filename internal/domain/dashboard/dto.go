package dashboard

import (
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
)

// EmployeeDashboard is the signed-in employee's landing view
type EmployeeDashboard struct {
	Employee        employee.EmployeeResponse  `json:"employee"`
	TodayAttendance *attendance.RecordResponse `json:"today_attendance"`
	RecentLeaves    []leave.RequestResponse    `json:"recent_leaves"`
	MonthSummary    attendance.Summary         `json:"month_summary"`
	LeaveBalance    employee.LeaveBalance      `json:"leave_balance"`
}

// AdminDashboard is the administrative overview
type AdminDashboard struct {
	EmployeeCount int `json:"employee_count"`
	PresentToday  int `json:"present_today"`
	AbsentToday   int `json:"absent_today"`
	OnLeaveToday  int `json:"on_leave_today"`
	PendingLeaves int `json:"pending_leaves"`
}
