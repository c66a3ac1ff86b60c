// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package cache

import (
	"strings"
	"unicode/utf8"
)

// Keyword is a search term with the value it stands for, such as
// {"trek", "hiking"} or {"gallery", "Cultural"}.
type Keyword[T comparable] struct {
	Text  string
	Value T
}

// Match is one keyword occurrence in a searched text.
type Match[T comparable] struct {
	Keyword  string // The matched keyword, lowercased
	Value    T      // Value of the keyword
	Position int    // Byte offset in the lowercased text
}

// KeywordMatcher finds every occurrence of a fixed keyword table in a text
// with an Aho-Corasick automaton, in O(n + m + z) time where:
//   - n = length of text
//   - m = total length of all keywords
//   - z = number of matches
//
// Matching is case-insensitive substring matching, so "Trekking" matches
// the keyword "trek". The automaton is built once by NewKeywordMatcher and
// is read-only afterwards, so a matcher is safe for concurrent use.
//
// Example:
//
//	m := NewKeywordMatcher(
//	    Keyword[string]{"hiking", "hiking"},
//	    Keyword[string]{"trek", "hiking"},
//	    Keyword[string]{"museum", "culture"},
//	)
//	m.Values("Trekked to the museum") // ["hiking", "culture"]
type KeywordMatcher[T comparable] struct {
	root     *acNode
	keywords []Keyword[T]
}

// acNode is a node of the automaton.
type acNode struct {
	children map[rune]*acNode
	failure  *acNode // Failure link for when match fails
	output   []int   // Indices of keywords that end at this node
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

// NewKeywordMatcher builds a matcher over keywords. Empty keywords are
// ignored; table order is kept and defines the order returned by Values.
func NewKeywordMatcher[T comparable](keywords ...Keyword[T]) *KeywordMatcher[T] {
	m := &KeywordMatcher[T]{root: newACNode()}
	for _, kw := range keywords {
		text := strings.ToLower(strings.TrimSpace(kw.Text))
		if text == "" {
			continue
		}
		m.keywords = append(m.keywords, Keyword[T]{Text: text, Value: kw.Value})
		m.insert(len(m.keywords)-1, text)
	}
	m.buildFailureLinks()
	return m
}

// NewKeywordGroups builds a matcher from a value to its keywords. order
// fixes the priority of the values since map iteration is random.
func NewKeywordGroups[T comparable](order []T, groups map[T][]string) *KeywordMatcher[T] {
	var keywords []Keyword[T]
	for _, value := range order {
		for _, text := range groups[value] {
			keywords = append(keywords, Keyword[T]{Text: text, Value: value})
		}
	}
	return NewKeywordMatcher(keywords...)
}

func (m *KeywordMatcher[T]) insert(index int, text string) {
	node := m.root
	for _, ch := range text {
		if node.children[ch] == nil {
			node.children[ch] = newACNode()
		}
		node = node.children[ch]
	}
	node.output = append(node.output, index)
}

// buildFailureLinks builds failure links breadth first.
func (m *KeywordMatcher[T]) buildFailureLinks() {
	queue := make([]*acNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			// Longest proper suffix that is also a prefix in the trie
			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = m.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// scan walks the automaton over text and calls fn for every keyword index
// ending at byte offset end. Scanning stops when fn returns false.
func (m *KeywordMatcher[T]) scan(text string, fn func(index, end int) bool) {
	if len(m.keywords) == 0 || text == "" {
		return
	}

	node := m.root
	for i, ch := range strings.ToLower(text) {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = m.root
			continue
		}
		node = node.children[ch]

		for _, idx := range node.output {
			if !fn(idx, i+utf8.RuneLen(ch)) {
				return
			}
		}
	}
}

// Search returns every keyword occurrence in text, ordered by end position.
func (m *KeywordMatcher[T]) Search(text string) []Match[T] {
	var matches []Match[T]
	m.scan(text, func(idx, end int) bool {
		kw := m.keywords[idx]
		matches = append(matches, Match[T]{
			Keyword:  kw.Text,
			Value:    kw.Value,
			Position: end - len(kw.Text),
		})
		return true
	})
	return matches
}

// Values returns the distinct values whose keywords occur in text, in
// keyword table order rather than text order. Callers that encode a rule
// priority in the table therefore get the highest priority value first.
func (m *KeywordMatcher[T]) Values(text string) []T {
	hit := make([]bool, len(m.keywords))
	matched := false
	m.scan(text, func(idx, _ int) bool {
		hit[idx] = true
		matched = true
		return true
	})
	if !matched {
		return nil
	}

	var values []T
	seen := make(map[T]struct{})
	for i, kw := range m.keywords {
		if !hit[i] {
			continue
		}
		if _, dup := seen[kw.Value]; dup {
			continue
		}
		seen[kw.Value] = struct{}{}
		values = append(values, kw.Value)
	}
	return values
}

// First returns the highest priority value found in text.
func (m *KeywordMatcher[T]) First(text string) (T, bool) {
	values := m.Values(text)
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[0], true
}
