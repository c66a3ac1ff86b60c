// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package sentiment provides the text sentiment scorers used by the insight
analyzers.

Scorers:

  - LexiconScorer: offline word lexicon with intensifiers and negators.
    The default; deterministic, so tests and the CLI use it.
  - HTTPScorer: delegates to a remote scoring service through a resty
    client and a circuit breaker.
  - Memo: per-request memoization in front of any Scorer.

All scorers return polarity in [-1, 1] and subjectivity in [0, 1], and the
neutral score {0, 0} for blank text.
*/
package sentiment
