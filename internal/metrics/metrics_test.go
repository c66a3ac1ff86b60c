// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramCount returns the number of observations of one histogram series.
func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	m, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", o)
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordAnalyzer(t *testing.T) {
	before := testutil.ToFloat64(AnalyzerFailures.WithLabelValues("test_section", "panic"))
	observedBefore := histogramCount(t, AnalyzerDuration.WithLabelValues("test_section"))

	RecordAnalyzer("test_section", 5*time.Millisecond, "")
	RecordAnalyzer("test_section", 5*time.Millisecond, "panic")

	after := testutil.ToFloat64(AnalyzerFailures.WithLabelValues("test_section", "panic"))
	if after-before != 1 {
		t.Errorf("expected one panic failure recorded, got %v", after-before)
	}
	if got := histogramCount(t, AnalyzerDuration.WithLabelValues("test_section")) - observedBefore; got != 2 {
		t.Errorf("expected both runs observed, got %d", got)
	}
}

func TestRecordPipelineRun(t *testing.T) {
	tests := []struct {
		name    string
		failed  int
		outcome string
	}{
		{"all sections succeeded", 0, "complete"},
		{"one section degraded", 1, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(PipelineRuns.WithLabelValues(tt.outcome))
			RecordPipelineRun(10*time.Millisecond, 12, tt.failed)
			after := testutil.ToFloat64(PipelineRuns.WithLabelValues(tt.outcome))
			if after-before != 1 {
				t.Errorf("expected %s counter to increase by 1, got %v", tt.outcome, after-before)
			}
		})
	}
}

func TestRecordSentiment(t *testing.T) {
	beforeOK := testutil.ToFloat64(SentimentRequests.WithLabelValues("metrics_test", "success"))
	beforeErr := testutil.ToFloat64(SentimentRequests.WithLabelValues("metrics_test", "error"))

	RecordSentiment("metrics_test", nil)
	RecordSentiment("metrics_test", errors.New("timeout"))

	if got := testutil.ToFloat64(SentimentRequests.WithLabelValues("metrics_test", "success")) - beforeOK; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SentimentRequests.WithLabelValues("metrics_test", "error")) - beforeErr; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("metrics_test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics_test"))

	RecordCacheLookup("metrics_test", true)
	RecordCacheLookup("metrics_test", false)
	RecordCacheLookup("metrics_test", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("metrics_test")) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics_test")) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(415); got != "415" {
		t.Errorf("StatusLabel(415) = %q", got)
	}
}
