package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Data-layer error taxonomy. Every storage failure is folded into one of
// these before it reaches a controller.
var (
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrReferentialViolation = errors.New("referential violation")
	ErrNotFound             = errors.New("not found")
)

// pgSQLErr matches both pgconn.PgError and pq.Error without importing either.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// TranslateDBError folds GORM and Postgres errors into the taxonomy above.
// 23505 unique_violation, 23503 foreign_key_violation, 23514 check_violation.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrReferentialViolation
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return ErrDuplicateKey
		case "23503":
			return ErrReferentialViolation
		case "23514":
			return ErrConstraintViolation
		}
	}
	return err
}

// JsonDBError writes the standard error envelope for a storage failure.
func JsonDBError(c *fiber.Ctx, err error, entity string) error {
	switch translated := TranslateDBError(err); {
	case errors.Is(translated, ErrNotFound):
		return JsonError(c, http.StatusNotFound, entity+" not found")
	case errors.Is(translated, ErrDuplicateKey):
		return JsonError(c, http.StatusConflict, entity+" already exists (duplicate key)")
	case errors.Is(translated, ErrReferentialViolation):
		return JsonError(c, http.StatusConflict, entity+" is referenced by or references other rows (FK violation)")
	case errors.Is(translated, ErrConstraintViolation):
		return JsonError(c, http.StatusBadRequest, entity+": check constraint violated")
	default:
		return JsonError(c, http.StatusInternalServerError, translated.Error())
	}
}
