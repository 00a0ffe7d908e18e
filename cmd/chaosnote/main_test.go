package main

import (
	"context"
	"fmt"
	"testing"

	apperrors "github.com/matzehuels/chaosnote/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"interrupted", context.Canceled, exitInterrupted},
		{"wrapped interrupt", fmt.Errorf("run editor: %w", context.Canceled), exitInterrupted},
		{"invalid speed", apperrors.New(apperrors.ErrCodeInvalidSpeed, "speed 5000ms out of range"), exitUsage},
		{"missing config", apperrors.New(apperrors.ErrCodeNotFound, "config file"), exitFailure},
		{"internal", apperrors.New(apperrors.ErrCodeInternal, "run editor"), exitFailure},
		{"plain", fmt.Errorf("open note store: boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
