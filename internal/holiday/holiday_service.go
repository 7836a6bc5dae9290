package holiday

import (
	"context"
	"database/sql"
	"sort"

	holidayerrors "go-erp/internal/holiday/errors"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetDays(ctx context.Context, companyID string, p period.Period) ([]int, error)
	SetDays(ctx context.Context, companyID string, req SetHolidaysRequest) (HolidaysResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetDays(ctx context.Context, companyID string, p period.Period) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	days, err := s.repo.FindDays(ctx, companyID, p)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []int{}
	}
	sort.Ints(days)
	return days, nil
}

// SetDays replaces the holiday list of one month. Repeated days collapse into one.
func (s *service) SetDays(ctx context.Context, companyID string, req SetHolidaysRequest) (HolidaysResponse, error) {
	p := period.New(req.Month, req.Year)
	if err := p.Validate(); err != nil {
		return HolidaysResponse{}, err
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return HolidaysResponse{}, apperror.InvalidField("company_id")
	}

	last := p.DaysInMonth()
	seen := make(map[int]bool, len(req.Days))
	days := make([]int, 0, len(req.Days))
	for _, d := range req.Days {
		if d < 1 || d > last {
			return HolidaysResponse{}, holidayerrors.ErrInvalidDay.WithDetails(map[string]any{"day": d})
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)

	rows := make([]Holiday, len(days))
	for i, d := range days {
		rows[i] = Holiday{ID: uuid.New(), CompanyID: companyUUID, Year: p.Year, Month: p.Month, Day: d}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidaysResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).ReplaceDays(ctx, companyID, p, rows); err != nil {
		return HolidaysResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return HolidaysResponse{}, err
	}

	s.logger.Info("holidays replaced", zap.String("period", p.String()), zap.Int("days", len(days)))
	return HolidaysResponse{Month: p.Month, Year: p.Year, Days: days}, nil
}
