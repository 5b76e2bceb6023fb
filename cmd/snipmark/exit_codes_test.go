package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"unknown error is general", errors.New("boom"), ExitGeneral},
		{"canceled is general", context.Canceled, ExitGeneral},

		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", fmt.Errorf("open: %w", os.ErrPermission), ExitIO},
		{"document not found", fmt.Errorf("%w: x", snipmark.ErrDocumentNotFound), ExitIO},
		{"document read", snipmark.ErrDocumentRead, ExitIO},
		{"path traversal", snipmark.ErrPathTraversal, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"render failed", fmt.Errorf("%w: 1 of 2", ErrRenderFailed), ExitIO},

		{"usage", ErrUsage, ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"collision", ErrOutputCollision, ExitUsage},
		{"no base url", ErrNoBaseURL, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config too long", config.ErrFieldTooLong, ExitUsage},
		{"config invalid", config.ErrInvalidValue, ExitUsage},
		{"unknown style", snipmark.ErrUnknownStyle, ExitUsage},
		{"invalid document name", snipmark.ErrInvalidDocumentName, ExitUsage},
		{"invalid documents root", snipmark.ErrInvalidDocumentsRoot, ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
