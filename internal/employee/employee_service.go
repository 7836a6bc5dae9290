package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-erp/internal/employee/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	RosterKeyPrefix = "employees:roster:"
	rosterTTL       = time.Hour
)

func GetRosterKey(companyID string) string {
	return RosterKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetRoster(ctx context.Context, companyID string) ([]RosterEntry, error)
	InvalidateRoster(ctx context.Context, companyID string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService caches rosters in rdb when it is not nil.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetRoster(ctx context.Context, companyID string) ([]RosterEntry, error) {
	cacheKey := GetRosterKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []RosterEntry
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("roster cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindRoster(ctx, companyID)
		if err != nil {
			s.logger.Error("load roster failed", zap.String("company_id", companyID), zap.Error(err))
			return nil, employeeerrors.ErrRosterUnavailable.WithCause(err)
		}

		resp := mapToRoster(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, rosterTTL).Err(); err != nil {
					s.logger.Warn("roster cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]RosterEntry), nil
}

func (s *service) InvalidateRoster(ctx context.Context, companyID string) error {
	if s.rdb == nil {
		return nil
	}
	cacheKey := GetRosterKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate roster cache", zap.String("key", cacheKey), zap.Error(err))
		return err
	}
	return nil
}

func mapToRoster(rows []Employee) []RosterEntry {
	res := make([]RosterEntry, len(rows))
	for i, e := range rows {
		res[i] = RosterEntry{
			EmployeeID: e.Email,
			Name:       e.FullName,
			Category:   e.Category,
		}
		if e.Salary.Valid {
			v := e.Salary.Decimal.InexactFloat64()
			res[i].Salary = &v
		}
	}
	return res
}
