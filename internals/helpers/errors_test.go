package helper

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

// fakePgError stands in for pgconn.PgError / pq.Error.
type fakePgError struct {
	code string
}

func (e *fakePgError) SQLState() string { return e.code }
func (e *fakePgError) Error() string    { return "SQLSTATE " + e.code }

func TestTranslateDBError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrDuplicateKey},
		{"gorm fk violated", gorm.ErrForeignKeyViolated, ErrReferentialViolation},
		{"unique_violation", &fakePgError{code: "23505"}, ErrDuplicateKey},
		{"foreign_key_violation", &fakePgError{code: "23503"}, ErrReferentialViolation},
		{"check_violation", &fakePgError{code: "23514"}, ErrConstraintViolation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TranslateDBError(tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("TranslateDBError(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTranslateDBErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &fakePgError{code: "23505"})
	if got := TranslateDBError(wrapped); !errors.Is(got, ErrDuplicateKey) {
		t.Fatalf("wrapped pg error not translated, got %v", got)
	}
}

func TestTranslateDBErrorPassthrough(t *testing.T) {
	other := errors.New("connection refused")
	if got := TranslateDBError(other); !errors.Is(got, other) {
		t.Fatalf("unrelated error rewritten to %v", got)
	}
	unknownState := &fakePgError{code: "40001"}
	if got := TranslateDBError(unknownState); got != error(unknownState) {
		t.Fatalf("unknown SQLSTATE rewritten to %v", got)
	}
}
