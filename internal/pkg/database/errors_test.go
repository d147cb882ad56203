package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"testing"

	"github.com/lib/pq"
)

func TestIsTransientClassification(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		transient bool
	}{
		{"nil", nil, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"bad connection", driver.ErrBadConn, true},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"pq connection exception", &pq.Error{Code: pq.ErrorCode("08006")}, true},
		{"pq operator intervention", &pq.Error{Code: pq.ErrorCode("57P01")}, true},
		{"pq unique violation", &pq.Error{Code: pq.ErrorCode("23505")}, false},
		{"no rows", sql.ErrNoRows, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransient(tc.err); got != tc.transient {
				t.Fatalf("IsTransient(%v) = %v, want %v", tc.err, got, tc.transient)
			}
		})
	}
}

func TestMapErrorTagsTransient(t *testing.T) {
	mapped := MapError("edge read", context.DeadlineExceeded)
	if !errors.Is(mapped, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", mapped)
	}
}

func TestMapErrorKeepsNonTransient(t *testing.T) {
	base := errors.New("syntax error")
	mapped := MapError("edge read", base)
	if errors.Is(mapped, ErrUnavailable) {
		t.Fatalf("expected non-transient error untagged, got %v", mapped)
	}
	if !errors.Is(mapped, base) {
		t.Fatalf("expected original error preserved, got %v", mapped)
	}
}

func TestMapErrorNil(t *testing.T) {
	if err := MapError("edge read", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
