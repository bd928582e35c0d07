package services

import (
	"context"
	"time"

	aws_pkg "sportsstore-service/pkg/aws"
)

// recordCount emits metric in the background so callers never wait on CloudWatch.
func recordCount(m aws_pkg.MetricsRecorder, metric string, dims map[string]string) {
	if m == nil || !m.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.RecordCount(ctx, metric, dims)
	}()
}

func recordValue(m aws_pkg.MetricsRecorder, metric string, value float64, dims map[string]string) {
	if m == nil || !m.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.RecordValue(ctx, metric, value, dims)
	}()
}
