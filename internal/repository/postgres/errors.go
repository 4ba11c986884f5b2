package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/vishyarjun/fyyur/internal/domain"
)

// foreignKeyViolation is the SQLSTATE raised when a row references a missing parent.
const foreignKeyViolation = "23503"

// mapError translates driver errors into domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrReferenceViolation, perr.Detail)
	}
	return err
}

// likePattern turns a search term into an ILIKE pattern that matches the
// term anywhere in the value, with LIKE metacharacters taken literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
