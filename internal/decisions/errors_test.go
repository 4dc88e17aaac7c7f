package decisions_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", decisions.ErrNotFound, http.StatusNotFound},
		{"duplicate", decisions.ErrDuplicate, http.StatusConflict},
		{"missing field", decisions.ErrMissingField, http.StatusBadRequest},
		{"invalid input", decisions.ErrInvalidInput, http.StatusBadRequest},
		{"file too large", decisions.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"wrapped missing field", fmt.Errorf("%w: codeNAC", decisions.ErrMissingField), http.StatusBadRequest},
		{"unknown error", errors.New("database timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decisions.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
