//go:build !integration

package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"glowSkincare/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&domain.ValidationError{Fields: []string{"skin_type"}, Reason: "incomplete profile"}, http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", domain.ErrInvalidOption), http.StatusBadRequest},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("%w: product 9", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: session changed", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: timeout", domain.ErrAnalysisFailed), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got, _ := StatusFromError(tt.err); got != tt.want {
			t.Errorf("StatusFromError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
