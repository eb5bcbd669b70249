package repository

import (
	"database/sql"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func (r *repository) classify(op string, err error) error {
	return classify(r.log, op, err)
}

func (q *querier) classify(op string, err error) error {
	return classify(q.log, op, err)
}

// classify hides driver details behind errs.ErrConstraint; the cause is only logged.
func classify(log *zap.Logger, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if isConstraintViolation(err) {
		log.Warn("constraint violation", zap.String("op", op), zap.Error(err))
		return errors.Wrap(errs.ErrConstraint, op)
	}
	return errors.Wrap(err, op)
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(errs.ErrNotFound, format, args...)
	}
	return err
}
