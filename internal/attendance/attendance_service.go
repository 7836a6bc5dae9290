package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"sort"
	"time"

	attendanceerrors "go-erp/internal/attendance/errors"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RosterReader lists the employee ids that must appear in a summary even without records.
type RosterReader interface {
	EmployeeIDs(ctx context.Context, companyID string) ([]string, error)
}

type HolidayReader interface {
	GetDays(ctx context.Context, companyID string, p period.Period) ([]int, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, companyID, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, companyID, employeeID string) (AttendanceResponse, error)
	List(ctx context.Context, companyID string, p period.Period) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, companyID string, p period.Period) ([]MonthlySummary, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	roster   RosterReader
	holidays HolidayReader
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, roster RosterReader, holidays HolidayReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		roster:   roster,
		holidays: holidays,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) CheckIn(ctx context.Context, companyID, employeeID string) (AttendanceResponse, error) {
	if employeeID == "" {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeRequired
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, apperror.InvalidField("company_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	open, err := qtx.FindLatestOpenSession(ctx, companyID, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && open != nil && open.AttendanceDate.Equal(today) {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	row := &AttendanceRecord{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeID,
		AttendanceDate: today,
		CheckIn:        now,
		Status:         StatusOpen,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("attendance check-in",
		zap.String("employee_id", employeeID),
		zap.String("date", today.Format("2006-01-02")),
	)
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, companyID, employeeID string) (AttendanceResponse, error) {
	if employeeID == "" {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindLatestOpenSession(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoOpenSession
		}
		return AttendanceResponse{}, err
	}

	now := s.now().UTC()
	worked := now.Sub(row.CheckIn)
	if worked < 0 {
		worked = 0
	}
	duration := FormatDuration(worked)
	hours := math.Round(worked.Hours()*100) / 100

	row.CheckOut = &now
	row.Duration = &duration
	row.Hours = &hours
	row.Status = StatusClosed

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("attendance check-out",
		zap.String("employee_id", employeeID),
		zap.String("duration", duration),
	)
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, companyID string, p period.Period) ([]AttendanceResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindByPeriod(ctx, companyID, p)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// MonthlySummary tallies the month for every known employee. A failed roster or holiday read
// only narrows the summary, it never fails it.
func (s *service) MonthlySummary(ctx context.Context, companyID string, p period.Period) ([]MonthlySummary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := contextutil.GetLogger(ctx, s.logger)

	records, err := s.repo.FindByPeriod(ctx, companyID, p)
	if err != nil {
		return nil, err
	}

	var employees []string
	if s.roster != nil {
		if employees, err = s.roster.EmployeeIDs(ctx, companyID); err != nil {
			log.Warn("roster unavailable for attendance summary", zap.Error(err))
			employees = nil
		}
	}

	var holidays []int
	if s.holidays != nil {
		if holidays, err = s.holidays.GetDays(ctx, companyID, p); err != nil {
			log.Warn("holidays unavailable for attendance summary", zap.Error(err))
			holidays = nil
		}
	}

	tallies := Aggregate(employees, records, p, holidays)
	days := p.DaysInMonth()

	out := make([]MonthlySummary, 0, len(tallies))
	for id, t := range tallies {
		out = append(out, MonthlySummary{
			EmployeeID: id,
			Present:    t.Present,
			Absent:     t.Absent,
			TotalDays:  days,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func mapToResponse(a AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID,
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		CheckIn:        a.CheckIn.Format(time.RFC3339),
		Duration:       a.Duration,
		Hours:          a.Hours,
		Status:         a.Status,
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
