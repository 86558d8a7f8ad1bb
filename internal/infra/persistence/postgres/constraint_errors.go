package postgres

import (
	"strings"

	"directory/internal/errors"
	"directory/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	sqliteUniqueViolation = "UNIQUE constraint failed: "
)

// uniqueViolation reports whether err is a unique constraint violation and,
// when the driver exposes it, the name of the violated index.
func uniqueViolation(err error) (index string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}

		return pgErr.ConstraintName, true
	}

	// SQLite reports the indexed columns instead of the index name.
	if _, columns, found := strings.Cut(err.Error(), sqliteUniqueViolation); found {
		return sqliteIndexName(columns), true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

func sqliteIndexName(columns string) string {
	switch strings.TrimSpace(columns) {
	case "business_listings.slug":
		return model.IndexListingSlug
	case "business_listings.user_id":
		return model.IndexListingActiveUser
	default:
		return ""
	}
}
