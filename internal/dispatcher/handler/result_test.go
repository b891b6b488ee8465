package handler

import (
	"errors"
	"testing"
)

func TestResultConstructors(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		status ResultStatus
	}{
		{"success", Success(), StatusOK},
		{"no-op", NoOp(), StatusNoOp},
		{"error", Error(errors.New("x")), StatusError},
		{"cancelled", Cancelled(), StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Status != tt.status {
				t.Errorf("expected status %s, got %s", tt.status, tt.result.Status)
			}
		})
	}
}

func TestResultPredicates(t *testing.T) {
	if !Success().IsOK() {
		t.Error("Success should be OK")
	}
	if Success().IsError() {
		t.Error("Success should not be an error")
	}
	if !Errorf("boom").IsError() {
		t.Error("Errorf should be an error")
	}
	if NoOp().IsOK() {
		t.Error("NoOp should not be OK")
	}
}

func TestErrorfWrapsFormattedError(t *testing.T) {
	base := errors.New("denied")
	r := Errorf("clipboard: %w", base)

	if !errors.Is(r.Error, base) {
		t.Error("Errorf should support %w wrapping")
	}
}

func TestWithMessage(t *testing.T) {
	r := Success().WithMessage("Mark set")

	if r.Message != "Mark set" {
		t.Errorf("expected message, got %q", r.Message)
	}
	if r.Status != StatusOK {
		t.Error("WithMessage must not change the status")
	}
}

func TestResultData(t *testing.T) {
	r := Success().WithData("matches", 7).WithData("query", "foo").WithData("failed", true)

	if got := r.GetDataInt("matches"); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := r.GetDataString("query"); got != "foo" {
		t.Errorf("expected foo, got %q", got)
	}
	if !r.GetDataBool("failed") {
		t.Error("expected failed=true")
	}
	if _, ok := r.GetData("absent"); ok {
		t.Error("absent key should not be found")
	}
	if got := r.GetDataInt("absent"); got != 0 {
		t.Errorf("absent int should be 0, got %d", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status ResultStatus
		want   string
	}{
		{StatusOK, "ok"},
		{StatusNoOp, "no-op"},
		{StatusError, "error"},
		{StatusCancelled, "cancelled"},
		{ResultStatus(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
