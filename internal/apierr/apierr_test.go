package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors_MapCodesAndStatuses(t *testing.T) {
	cause := errors.New("boom")
	cases := []struct {
		name   string
		err    *Error
		code   string
		status int
	}{
		{"invalid input", InvalidInput(cause), CodeInvalidInput, http.StatusBadRequest},
		{"auth required", AuthRequired(cause), CodeAuthRequired, http.StatusUnauthorized},
		{"not found", NotFound(cause), CodeNotFound, http.StatusNotFound},
		{"upstream unavailable", UpstreamUnavailable(cause), CodeUpstreamUnavailable, http.StatusBadGateway},
		{"unparseable response", UnparseableResponse(cause), CodeUnparseableResponse, http.StatusBadGateway},
		{"empty result", EmptyResult(cause), CodeEmptyResult, http.StatusBadGateway},
		{"nothing to save", NothingToSave(cause), CodeNothingToSave, http.StatusUnprocessableEntity},
		{"persistence failure", PersistenceFailure(cause), CodePersistenceFailure, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Fatalf("code = %q, want %q", tc.err.Code, tc.code)
			}
			if tc.err.Status != tc.status {
				t.Fatalf("status = %d, want %d", tc.err.Status, tc.status)
			}
			if !errors.Is(tc.err, cause) {
				t.Fatalf("cause not wrapped")
			}
		})
	}
}

func TestCodeAndStatus_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound(errors.New("missing")))
	if Code(err) != CodeNotFound {
		t.Fatalf("Code through wrap = %q", Code(err))
	}
	if Status(err) != http.StatusNotFound {
		t.Fatalf("Status through wrap = %d", Status(err))
	}
	if !Is(err, CodeNotFound) {
		t.Fatalf("Is failed through wrap")
	}
}

func TestStatus_DefaultsTo500(t *testing.T) {
	if Status(errors.New("plain")) != http.StatusInternalServerError {
		t.Fatalf("plain errors should map to 500")
	}
	if Status(nil) != http.StatusInternalServerError {
		t.Fatalf("nil should map to 500")
	}
	if Code(errors.New("plain")) != "" {
		t.Fatalf("plain errors have no code")
	}
}
