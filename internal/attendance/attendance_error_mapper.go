package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-erp/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const openSessionConstraint = "uq_attendance_open_session"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == openSessionConstraint {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, openSessionConstraint) {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return err
}
