package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func TestFromDB_Classification(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"gorm not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"wrapped gorm not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"pg fk violation", &pgconn.PgError{Code: "23503"}, ErrInvalid},
		{"sqlite unique violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrConflict},
		{"sqlite pk violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ErrConflict},
		{"sqlite fk violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDB(tc.in)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFromDB_UnknownErrorUntouched(t *testing.T) {
	in := errors.New("connection refused")
	got := FromDB(in)
	if !errors.Is(got, in) {
		t.Fatalf("expected original error preserved, got %v", got)
	}
	for _, sentinel := range []error{ErrNotFound, ErrConflict, ErrInvalid, ErrUnauthorized, ErrForbidden} {
		if errors.Is(got, sentinel) {
			t.Fatalf("unknown error misclassified as %v", sentinel)
		}
	}
}

func TestInvalidAndNotFoundWrapSentinels(t *testing.T) {
	if err := Invalid("bad field %q", "email"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Invalid does not wrap ErrInvalid: %v", err)
	}
	if err := NotFound("college %s", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("NotFound does not wrap ErrNotFound: %v", err)
	}
}
