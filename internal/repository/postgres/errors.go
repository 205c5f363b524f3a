package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation           = "23505"
	pqForeignKeyViolation       = "23503"
	pqInvalidTextRepresentation = "22P02"
)

func pqCode(err error) string {
	var perr *pq.Error
	if errors.As(err, &perr) {
		return string(perr.Code)
	}
	return ""
}

func pqConstraint(err error) string {
	var perr *pq.Error
	if errors.As(err, &perr) {
		return perr.Constraint
	}
	return ""
}
