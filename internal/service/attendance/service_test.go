package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAttendanceRepo keys records by employee and date, mirroring the store's
// unique constraint
type mockAttendanceRepo struct {
	records map[string]*attendance.Record
	nextID  int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*attendance.Record)}
}

func (m *mockAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Create(ctx context.Context, rec *attendance.Record) error {
	k := m.key(rec.EmployeeID, rec.Date)
	if _, exists := m.records[k]; exists {
		return attendance.ErrAlreadyCheckedIn
	}
	m.nextID++
	rec.ID = fmt.Sprintf("rec-%d", m.nextID)
	copied := *rec
	m.records[k] = &copied
	return nil
}

func (m *mockAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, attendance.ErrRecordNotFound
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	rec, ok := m.records[m.key(employeeID, date)]
	if !ok {
		return nil, attendance.ErrRecordNotFound
	}
	copied := *rec
	return &copied, nil
}

func (m *mockAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]*attendance.Record, error) {
	var out []*attendance.Record
	for _, rec := range m.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(rec.Status) != filter.Status {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListByMonth(ctx context.Context, employeeID string, month time.Month, year int) ([]*attendance.Record, error) {
	var out []*attendance.Record
	for _, rec := range m.records {
		if rec.EmployeeID == employeeID && rec.Date.Month() == month && rec.Date.Year() == year {
			copied := *rec
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, rec *attendance.Record) error {
	for k, existing := range m.records {
		if existing.ID == rec.ID {
			copied := *rec
			m.records[k] = &copied
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (m *mockAttendanceRepo) CountByDate(ctx context.Context, date time.Time) (map[attendance.Status]int, error) {
	counts := make(map[attendance.Status]int)
	for _, rec := range m.records {
		if rec.Date.Equal(date) {
			counts[rec.Status]++
		}
	}
	return counts, nil
}

func authedContext(t *testing.T, userID, employeeID string, role user.Role) context.Context {
	t.Helper()
	ta := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ta.Encode(map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo attendance.Repository) (attendance.Service, *realtime.Registry) {
	registry := realtime.NewRegistry(8)
	return NewAttendanceService(repo, realtime.NewEmitter(registry)), registry
}

func TestCheckIn(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, registry := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	conn, cleanup := registry.Register("user-1", "employee")
	defer cleanup()

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)

	ev := <-conn.Events()
	assert.Equal(t, realtime.EventAttendanceCheckIn, ev.Name)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInFillsAdminSeededRecord(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	// An admin recorded the day before the employee checked in
	require.NoError(t, repo.Create(context.Background(), &attendance.Record{
		EmployeeID: "emp-1",
		Date:       workingDay(time.Now().UTC()),
		Status:     attendance.StatusAbsent,
	}))

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", workingDay(time.Now().UTC()))
	require.NoError(t, err)
	assert.NotNil(t, rec.CheckIn)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	_, err := svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutDerivesHoursAndStatus(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, registry := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	conn, cleanup := registry.Register("user-1", "employee")
	defer cleanup()

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	<-conn.Events()

	// Backdate the stored check-in so the span crosses the half-day threshold
	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", workingDay(time.Now().UTC()))
	require.NoError(t, err)
	backdated := rec.CheckIn.Add(-5 * time.Hour)
	rec.CheckIn = &backdated
	require.NoError(t, repo.Update(context.Background(), rec))

	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	assert.InDelta(t, 5.0, resp.WorkHours, 0.01)
	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)

	ev := <-conn.Events()
	assert.Equal(t, realtime.EventAttendanceCheckOut, ev.Name)
}

func TestCheckOutTwice(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestListScopesNonAdministrativeCallers(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)

	seed := func(employeeID string) {
		now := time.Now().UTC()
		require.NoError(t, repo.Create(context.Background(), &attendance.Record{
			EmployeeID: employeeID,
			Date:       workingDay(now),
			CheckIn:    &now,
			Status:     attendance.StatusPresent,
		}))
	}
	seed("emp-1")
	seed("emp-2")

	// An employee asking for someone else's records still gets only their own
	employeeCtx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)
	records, err := svc.List(employeeCtx, attendance.Filter{EmployeeID: "emp-2"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "emp-1", records[0].EmployeeID)

	// HR sees everything
	hrCtx := authedContext(t, "user-2", "emp-hr", user.RoleHR)
	records, err = svc.List(hrCtx, attendance.Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSummaryAggregation(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	seed := func(day int, status attendance.Status, hours float64) {
		require.NoError(t, repo.Create(context.Background(), &attendance.Record{
			EmployeeID: "emp-1",
			Date:       time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
			Status:     status,
			WorkHours:  hours,
		}))
	}
	seed(1, attendance.StatusPresent, 8)
	seed(2, attendance.StatusPresent, 9.5)
	seed(3, attendance.StatusHalfDay, 4)
	seed(4, attendance.StatusLeave, 0)

	resp, err := svc.Summary(ctx, "emp-1", time.March, 2024)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 4, resp.Summary.TotalDays)
	assert.Equal(t, 2, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.HalfDay)
	assert.Equal(t, 1, resp.Summary.Leave)
	assert.Equal(t, 0, resp.Summary.Absent)
	assert.InDelta(t, 21.5, resp.Summary.TotalWorkHours, 0.001)
}

func TestSummaryOwnershipGuard(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	ctx := authedContext(t, "user-1", "emp-1", user.RoleEmployee)

	_, err := svc.Summary(ctx, "emp-2", time.March, 2024)
	assert.ErrorIs(t, err, user.ErrOwnershipRequired)
}

func TestAdminUpdateOverwritesWithoutDerivation(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	adminCtx := authedContext(t, "user-9", "emp-9", user.RoleAdmin)

	now := time.Now().UTC()
	rec := &attendance.Record{
		EmployeeID: "emp-1",
		Date:       workingDay(now),
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
		WorkHours:  8,
	}
	require.NoError(t, repo.Create(context.Background(), rec))

	status := "leave"
	hours := 0.0
	remarks := "approved sick leave"
	resp, err := svc.AdminUpdate(adminCtx, rec.ID, attendance.UpdateRequest{
		Status:    &status,
		WorkHours: &hours,
		Remarks:   &remarks,
	})
	require.NoError(t, err)
	assert.Equal(t, "leave", resp.Status)
	assert.Equal(t, 0.0, resp.WorkHours, "no derivation re-runs on raw overwrite")
	assert.Equal(t, remarks, resp.Remarks)
}

func TestAdminUpdateValidation(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc, _ := newTestService(repo)
	adminCtx := authedContext(t, "user-9", "emp-9", user.RoleAdmin)

	bad := "nonsense"
	_, err := svc.AdminUpdate(adminCtx, "any", attendance.UpdateRequest{Status: &bad})
	assert.Error(t, err)
}
