package database

import (
	"errors"
	"fmt"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, true},
		{"postgres unique", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres syntax", &pgconn.PgError{Code: "42601"}, false},
		{"mysql duplicate", &gomysql.MySQLError{Number: 1062}, true},
		{"mysql fk", &gomysql.MySQLError{Number: 1452}, true},
		{"mysql lock wait", &gomysql.MySQLError{Number: 1205}, false},
		{"sqlite fk", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), true},
		{"connection", errors.New("dial tcp: connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConstraintViolation(tt.err); got != tt.want {
				t.Errorf("IsConstraintViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
