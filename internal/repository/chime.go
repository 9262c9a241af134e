package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/questx-lab/chime-integration/internal/common"
)

var ErrNotFound = errors.New("record not found")

// call runs one Chime API operation and records its outcome.
func call[T any](operation string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()

	status := "ok"
	if err != nil {
		status = "error"
	}

	common.PromCounters[common.ChimeAPICallTotal].WithLabelValues(operation, status).Inc()
	common.PromHistograms[common.ChimeAPICallDurationSeconds].
		WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		return out, fmt.Errorf("chime %s: %w", operation, err)
	}

	return out, nil
}

func errEmptyOutput(operation string) error {
	return fmt.Errorf("chime %s: empty output", operation)
}
