package holiday

import (
	"errors"

	holidayerrors "go-erp/internal/holiday/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const holidayDayConstraint = "uq_holiday_day"

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == holidayDayConstraint {
		return holidayerrors.ErrConcurrentUpdate.WithCause(err)
	}
	return err
}
