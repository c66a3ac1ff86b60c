// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/sentiment"
)

// ErrUnknownSection is returned by RunSection for a name with no analyzer.
var ErrUnknownSection = errors.New("unknown insight section")

// errAnalyzerTimeout marks an analyzer that did not return within its budget.
var errAnalyzerTimeout = errors.New("analyzer timed out")

// Analyzer derives one section of the report from the shared entries.
//
// Analyze must treat the entries as read-only. Default returns the value
// the section degrades to when Analyze fails.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, in *Input) (any, error)
	Default() any
}

// Input is the read-only data shared by every analyzer of one run.
type Input struct {
	Entries []models.Entry
	Scorer  *sentiment.Memo
}

// NewInput wraps scorer in a per-run memo.
func NewInput(entries []models.Entry, scorer sentiment.Scorer) *Input {
	return &Input{Entries: entries, Scorer: sentiment.NewMemo(scorer)}
}

// Score returns the sentiment of text, neutral for blank text.
func (in *Input) Score(ctx context.Context, text string) (models.SentimentScore, error) {
	if text == "" {
		return models.NeutralScore, nil
	}
	return in.Scorer.Score(ctx, text)
}

// RunSummary reports the outcome of one run. A section listed in Failed
// carries its default payload in the report.
type RunSummary struct {
	Succeeded []string
	Failed    []string
	Errors    []error
	Duration  time.Duration
}

// Degraded reports whether any section fell back to its default.
func (s *RunSummary) Degraded() bool {
	return len(s.Failed) > 0
}

// Option configures an Engine.
type Option func(*Engine)

// WithGeoLimits bounds the geocoding done by the geographic facts section.
func WithGeoLimits(maxLocations int, timeout time.Duration) Option {
	return func(e *Engine) {
		if maxLocations > 0 {
			e.geoMaxLocations = maxLocations
		}
		if timeout > 0 {
			e.geoTimeout = timeout
		}
	}
}

// WithAnalyzer replaces the built-in analyzer of the same name, or appends
// a new section when the name is not registered.
func WithAnalyzer(a Analyzer) Option {
	return func(e *Engine) {
		e.overrides = append(e.overrides, a)
	}
}

// Engine runs the analyzers over one batch of entries and merges their
// results into a models.Report. An Engine is safe for concurrent use; all
// per-run state lives in the Input.
type Engine struct {
	cfg      config.InsightsConfig
	scorer   sentiment.Scorer
	geocoder geo.Geocoder

	geoMaxLocations int
	geoTimeout      time.Duration

	analyzers []Analyzer
	index     map[string]int
	overrides []Analyzer
}

// NewEngine creates an engine with the full analyzer registry. geocoder may
// be nil, in which case geographic facts always degrade to empty.
func NewEngine(cfg config.InsightsConfig, scorer sentiment.Scorer, geocoder geo.Geocoder, opts ...Option) *Engine {
	e := &Engine{
		cfg:             cfg,
		scorer:          scorer,
		geocoder:        geocoder,
		geoMaxLocations: 25,
		geoTimeout:      10 * time.Second,
		index:           make(map[string]int),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.register(e.registry()...)
	e.register(e.overrides...)
	return e
}

func (e *Engine) register(analyzers ...Analyzer) {
	for _, a := range analyzers {
		if i, ok := e.index[a.Name()]; ok {
			e.analyzers[i] = a
			continue
		}
		e.index[a.Name()] = len(e.analyzers)
		e.analyzers = append(e.analyzers, a)
	}
}

// Sections returns the analyzer names in report order.
func (e *Engine) Sections() []string {
	names := make([]string, len(e.analyzers))
	for i, a := range e.analyzers {
		names[i] = a.Name()
	}
	return names
}

// Run executes every analyzer and merges the results. It never fails: a
// failing analyzer degrades its own section and is listed in the summary.
func (e *Engine) Run(ctx context.Context, entries []models.Entry) (*models.Report, RunSummary) {
	start := time.Now()
	in := NewInput(entries, e.scorer)

	results := make([]any, len(e.analyzers))
	errs := make([]error, len(e.analyzers))

	if e.cfg.Parallel {
		var wg sync.WaitGroup
		for i, a := range e.analyzers {
			wg.Add(1)
			go func(i int, a Analyzer) {
				defer wg.Done()
				results[i], errs[i] = e.runOne(ctx, a, in)
			}(i, a)
		}
		wg.Wait()
	} else {
		for i, a := range e.analyzers {
			results[i], errs[i] = e.runOne(ctx, a, in)
		}
	}

	report := &models.Report{Status: models.StatusSuccess}
	summary := RunSummary{}
	for i, a := range e.analyzers {
		value := results[i]
		if errs[i] != nil {
			summary.Failed = append(summary.Failed, a.Name())
			summary.Errors = append(summary.Errors, errs[i])
			value = a.Default()
		} else {
			summary.Succeeded = append(summary.Succeeded, a.Name())
		}
		if !applySection(report, a.Name(), value) {
			logging.Ctx(ctx).Error().Str("section", a.Name()).Msgf("Analyzer returned unexpected type %T", value)
		}
	}
	summary.Duration = time.Since(start)

	metrics.RecordPipelineRun(summary.Duration, len(entries), len(summary.Failed))
	event := logging.Ctx(ctx).Info()
	if summary.Degraded() {
		event = logging.Ctx(ctx).Warn().Strs("failed_sections", summary.Failed)
	}
	event.
		Int("entries", len(entries)).
		Int("sections", len(e.analyzers)).
		Int("scored_texts", in.Scorer.Len()).
		Dur("duration", summary.Duration).
		Msg("Insight pipeline finished")

	return report, summary
}

// RunSection runs the named analyzer alone. The result maps the section
// name to its payload, plus the value promoted to the top level of the
// full report for location_repeats and geographic_facts. A failing analyzer
// yields its default payload and the error.
func (e *Engine) RunSection(ctx context.Context, entries []models.Entry, name string) (map[string]any, error) {
	i, ok := e.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	a := e.analyzers[i]

	value, err := e.runOne(ctx, a, NewInput(entries, e.scorer))
	if err != nil {
		value = a.Default()
	}

	out := map[string]any{name: value}
	switch v := value.(type) {
	case models.LocationRepeats:
		out["unique_locations_count"] = v.TotalUnique
	case models.GeographicFacts:
		out["total_distance_km"] = v.TotalDistance
	}
	return out, err
}

// WordFrequencies returns the configured number of most frequent words.
func (e *Engine) WordFrequencies(entries []models.Entry) []models.WordCount {
	return WordFrequencies(entries, e.cfg.WordFrequencyLimit)
}

// runOne invokes a single analyzer with panic recovery and a timeout. The
// analyzer runs in its own goroutine so a call that ignores its context
// cannot hold up the run past the timeout.
func (e *Engine) runOne(ctx context.Context, a Analyzer, in *Input) (any, error) {
	name := a.Name()
	start := time.Now()

	timeout := e.cfg.AnalyzerTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: &models.AnalyzerError{Section: name, Panic: true, Err: fmt.Errorf("%v", r)}}
			}
		}()
		value, err := a.Analyze(ctx, in)
		if err != nil {
			err = &models.AnalyzerError{Section: name, Err: err}
		}
		done <- outcome{value: value, err: err}
	}()

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		res = outcome{err: &models.AnalyzerError{Section: name, Err: fmt.Errorf("%w: %w", errAnalyzerTimeout, ctx.Err())}}
	}

	kind := failureKind(res.err)
	metrics.RecordAnalyzer(name, time.Since(start), kind)
	if res.err != nil {
		logging.Ctx(ctx).Warn().
			Err(res.err).
			Str("section", name).
			Str("kind", kind).
			Msg("Analyzer failed, section degraded to default")
	}
	return res.value, res.err
}

func failureKind(err error) string {
	if err == nil {
		return ""
	}
	var aerr *models.AnalyzerError
	switch {
	case errors.As(err, &aerr) && aerr.Panic:
		return "panic"
	case errors.Is(err, errAnalyzerTimeout):
		return "timeout"
	case models.IsExternalServiceError(err):
		return "external"
	default:
		return "error"
	}
}
