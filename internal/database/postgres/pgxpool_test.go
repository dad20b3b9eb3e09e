package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "jobs_slug_key"}
	if !IsUniqueViolation(fmt.Errorf("insert job: %w", dup)) {
		t.Fatalf("expected wrapped unique violation to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation must not match")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain error must not match")
	}
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)) {
		t.Fatalf("expected pgx.ErrNoRows to match")
	}
	if IsNoRows(errors.New("boom")) {
		t.Fatalf("plain error must not match")
	}
}
