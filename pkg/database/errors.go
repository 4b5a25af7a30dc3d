package database

import (
	"errors"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// MySQL server error numbers for integrity violations.
const (
	mysqlDuplicateEntry      = 1062
	mysqlNoReferencedRow     = 1216
	mysqlRowIsReferenced     = 1217
	mysqlRowIsReferenced2    = 1451
	mysqlNoReferencedRow2    = 1452
	mysqlCheckConstraintFail = 3819
)

// IsConstraintViolation reports whether err was raised by an integrity
// constraint (foreign key, unique, check, not null) in any supported store.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23")
	}

	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlNoReferencedRow, mysqlRowIsReferenced,
			mysqlRowIsReferenced2, mysqlNoReferencedRow2, mysqlCheckConstraintFail:
			return true
		}
		return false
	}

	if mongo.IsDuplicateKeyError(err) {
		return true
	}

	// sqlite reports constraints only through the message text
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "NOT NULL constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed")
}
