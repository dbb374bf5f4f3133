package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	emitter        *realtime.Emitter
}

func NewAttendanceService(attendanceRepo attendance.Repository, emitter *realtime.Emitter) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		emitter:        emitter,
	}
}

func callerFromContext(ctx context.Context) (userID, employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ = claims["user_id"].(string)
	employeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	return userID, employeeID, user.Role(roleStr), nil
}

// workingDay truncates a timestamp to its calendar date in UTC
func workingDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.RecordResponse, error) {
	userID, employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	checkIn := now
	rec := &attendance.Record{
		EmployeeID: employeeID,
		Date:       workingDay(now),
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	}

	// The unique (employee_id, date) constraint makes the second of two
	// concurrent check-ins lose with ErrAlreadyCheckedIn. A row can also
	// already exist without a check-in time when an admin recorded the day
	// first; then check-in fills it in instead of failing.
	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		if !errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.RecordResponse{}, err
		}

		existing, getErr := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workingDay(now))
		if getErr != nil {
			return attendance.RecordResponse{}, getErr
		}
		if existing.CheckIn != nil {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}

		existing.CheckIn = &checkIn
		existing.Status = attendance.StatusPresent
		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return attendance.RecordResponse{}, err
		}
		rec = existing
	}

	resp := attendance.ToResponse(rec)
	s.emitter.EmitToUser(userID, realtime.EventAttendanceCheckIn, resp)

	return resp, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.RecordResponse, error) {
	userID, employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workingDay(now))
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.RecordResponse{}, err
	}

	if rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now
	rec.CheckOut = &checkOut
	rec.WorkHours = attendance.ComputeWorkHours(*rec.CheckIn, checkOut)
	rec.Status = attendance.DeriveStatus(rec.WorkHours, rec.Status)

	if err := s.attendanceRepo.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	resp := attendance.ToResponse(rec)
	s.emitter.EmitToUser(userID, realtime.EventAttendanceCheckOut, resp)

	return resp, nil
}

// List implements attendance.Service. Non-administrative callers have the
// filter pinned to their own records regardless of what they asked for.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, error) {
	_, employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !user.Allowed(role, user.ResourceAttendance, user.ActionViewAll) {
		filter.EmployeeID = employeeID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}

// Summary implements attendance.Service. A zero month or year defaults to
// the current calendar month.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, month time.Month, year int) (attendance.SummaryResponse, error) {
	_, callerEmployeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	if employeeID == "" {
		employeeID = callerEmployeeID
	}
	if employeeID != callerEmployeeID && !user.Allowed(role, user.ResourceAttendance, user.ActionViewAll) {
		return attendance.SummaryResponse{}, user.ErrOwnershipRequired
	}

	now := time.Now().UTC()
	if month < time.January || month > time.December {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, employeeID, month, year)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	var summary attendance.Summary
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		summary.TotalDays++
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		case attendance.StatusLeave:
			summary.Leave++
		}
		summary.TotalWorkHours += rec.WorkHours
		responses = append(responses, attendance.ToResponse(rec))
	}

	return attendance.SummaryResponse{
		Month:   int(month),
		Year:    year,
		Summary: summary,
		Records: responses,
	}, nil
}

// AdminUpdate is the administrative raw overwrite: fields are written as
// given and no work-hour or status derivation runs.
func (s *AttendanceServiceImpl) AdminUpdate(ctx context.Context, id string, req attendance.UpdateRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*req.CheckIn)
		rec.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		rec.CheckOut = &t
	}
	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	}
	if req.WorkHours != nil {
		rec.WorkHours = *req.WorkHours
	}
	if req.Remarks != nil {
		rec.Remarks = *req.Remarks
	}

	if err := s.attendanceRepo.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(rec), nil
}
