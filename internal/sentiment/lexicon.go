// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package sentiment

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WordScore is the polarity and subjectivity of one lexicon word.
type WordScore struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// Lexicon is the word list used by LexiconScorer.
//
// A lexicon file has the same shape:
//
//	words:
//	  breathtaking: {polarity: 0.9, subjectivity: 0.9}
//	  overcrowded:  {polarity: -0.5, subjectivity: 0.6}
//	intensifiers: [insanely]
//	negators: [nae]
type Lexicon struct {
	Words        map[string]WordScore `yaml:"words"`
	Intensifiers []string             `yaml:"intensifiers"`
	Negators     []string             `yaml:"negators"`
}

// LoadLexicon reads a YAML lexicon file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	for word, score := range lex.Words {
		if score.Polarity < -1 || score.Polarity > 1 || score.Subjectivity < 0 || score.Subjectivity > 1 {
			return nil, fmt.Errorf("lexicon %s: word %q out of range: %+v", path, word, score)
		}
	}
	return &lex, nil
}

// Merge returns a new lexicon with the entries of other added to l. Words
// present in both take the score from other.
func (l *Lexicon) Merge(other *Lexicon) *Lexicon {
	merged := &Lexicon{
		Words:        make(map[string]WordScore, len(l.Words)+len(other.Words)),
		Intensifiers: append(append([]string(nil), l.Intensifiers...), other.Intensifiers...),
		Negators:     append(append([]string(nil), l.Negators...), other.Negators...),
	}
	maps.Copy(merged.Words, l.Words)
	for word, score := range other.Words {
		merged.Words[strings.ToLower(word)] = score
	}
	return merged
}

// DefaultLexicon returns the built-in English lexicon, weighted toward the
// vocabulary of travel writing.
func DefaultLexicon() *Lexicon {
	words := make(map[string]WordScore, len(defaultWords))
	maps.Copy(words, defaultWords)
	return &Lexicon{
		Words:        words,
		Intensifiers: append([]string(nil), defaultIntensifiers...),
		Negators:     append([]string(nil), defaultNegators...),
	}
}

var defaultIntensifiers = []string{
	"very", "really", "extremely", "incredibly", "absolutely", "truly",
	"super", "so", "totally", "utterly", "remarkably", "especially",
}

var defaultNegators = []string{
	"not", "never", "no", "hardly", "barely", "isn't", "wasn't", "aren't",
	"weren't", "don't", "didn't", "doesn't", "won't", "couldn't", "can't",
}

var defaultWords = map[string]WordScore{
	// Positive
	"amazing":       {0.6, 0.9},
	"awesome":       {1.0, 1.0},
	"beautiful":     {0.85, 1.0},
	"best":          {1.0, 0.3},
	"breathtaking":  {0.8, 0.9},
	"brilliant":     {0.9, 1.0},
	"calm":          {0.3, 0.75},
	"charming":      {0.5, 0.6},
	"cheerful":      {0.5, 0.6},
	"clean":         {0.37, 0.7},
	"comfortable":   {0.4, 0.7},
	"cozy":          {0.5, 0.7},
	"delicious":     {1.0, 1.0},
	"delightful":    {0.7, 0.8},
	"enjoy":         {0.4, 0.5},
	"enjoyed":       {0.4, 0.5},
	"excellent":     {1.0, 1.0},
	"excited":       {0.4, 0.75},
	"exciting":      {0.3, 0.8},
	"fantastic":     {0.4, 0.9},
	"friendly":      {0.375, 0.5},
	"fun":           {0.3, 0.2},
	"glorious":      {0.8, 0.9},
	"good":          {0.7, 0.6},
	"gorgeous":      {0.7, 0.8},
	"great":         {0.8, 0.75},
	"happy":         {0.8, 1.0},
	"incredible":    {0.9, 0.9},
	"joy":           {0.8, 0.8},
	"love":          {0.5, 0.6},
	"loved":         {0.7, 0.8},
	"lovely":        {0.5, 0.75},
	"magical":       {0.5, 0.8},
	"memorable":     {0.5, 0.6},
	"nice":          {0.6, 1.0},
	"peaceful":      {0.5, 0.7},
	"perfect":       {1.0, 1.0},
	"pleasant":      {0.73, 0.97},
	"relaxing":      {0.5, 0.6},
	"spectacular":   {0.8, 0.9},
	"stunning":      {0.5, 0.7},
	"sunny":         {0.3, 0.4},
	"superb":        {1.0, 1.0},
	"terrific":      {1.0, 1.0},
	"tasty":         {0.7, 0.8},
	"unforgettable": {0.6, 0.8},
	"vibrant":       {0.5, 0.7},
	"warm":          {0.6, 0.6},
	"welcoming":     {0.5, 0.6},
	"wonderful":     {1.0, 1.0},

	// Negative
	"annoying":      {-0.8, 0.9},
	"awful":         {-1.0, 1.0},
	"bad":           {-0.7, 0.67},
	"boring":        {-1.0, 1.0},
	"cold":          {-0.6, 1.0},
	"crowded":       {-0.3, 0.5},
	"dangerous":     {-0.6, 0.9},
	"dirty":         {-0.6, 0.8},
	"disappointed":  {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"disgusting":    {-1.0, 1.0},
	"exhausted":     {-0.4, 0.7},
	"exhausting":    {-0.4, 0.7},
	"expensive":     {-0.5, 0.7},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.9, 0.7},
	"horrible":      {-1.0, 1.0},
	"lost":          {-0.2, 0.3},
	"miserable":     {-1.0, 1.0},
	"noisy":         {-0.4, 0.6},
	"overpriced":    {-0.5, 0.6},
	"poor":          {-0.4, 0.6},
	"rainy":         {-0.2, 0.3},
	"rude":          {-0.6, 0.9},
	"sad":           {-0.5, 1.0},
	"scary":         {-0.5, 1.0},
	"sick":          {-0.71, 0.86},
	"stressful":     {-0.5, 0.8},
	"terrible":      {-1.0, 1.0},
	"tired":         {-0.4, 0.7},
	"ugly":          {-0.7, 1.0},
	"unpleasant":    {-0.6, 0.9},
	"worst":         {-1.0, 1.0},
}
