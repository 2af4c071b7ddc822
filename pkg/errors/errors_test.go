package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeAlreadyReturned, http.StatusBadRequest},
		{CodeNoCopies, http.StatusBadRequest},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("BOGUS"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "query rentals")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("expected dependency code got %s", err.Code())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New(CodeAlreadyReturned, "rental 7 already returned")
	outer := fmt.Errorf("return rental: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeAlreadyReturned {
		t.Fatalf("expected already-returned code got %s", typed.Code())
	}
}

func TestAsNilForForeignErrors(t *testing.T) {
	if typed := As(stdErrors.New("plain")); typed != nil {
		t.Fatalf("expected nil, got %v", typed)
	}
	if typed := As(nil); typed != nil {
		t.Fatalf("expected nil for nil error, got %v", typed)
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeNoCopies, "no copies").WithDetails(map[string]any{"unavailable_inventory_ids": []uint{3}})
	if err.Details() == nil {
		t.Fatal("expected details")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	inner := stdErrors.New("disk on fire")
	err := Wrap(CodeDependency, inner, "list overdue rentals")

	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("expected dependency code got %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected chain of at least 2, got %v", d.Chain)
	}
}
