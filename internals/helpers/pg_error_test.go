package helper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	helper "sekolahku_backend/internals/helpers"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pgerr 23505", &pgconn.PgError{Code: "23505"}, true},
		{"pgerr lain", &pgconn.PgError{Code: "23503"}, false},
		{"wrapped pgerr", fmt.Errorf("insert gagal: %w", &pgconn.PgError{Code: "23505"}), true},
		{"substring duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), true},
		{"error biasa", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := helper.IsUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("IsUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
