// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"sort"
	"strings"
	"unicode"

	"github.com/tomtom215/wayfarer/internal/models"
)

const minWordLength = 3

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		the and for are but not you all any can had her was one our out day get has him his how
		man new now old see two way who its let put say she too use that with have this will
		your from they know want been good much some time very when come here just like long
		make many more only over such take than them well were what which while would there
		their then these those into about after again also because before being both could
		did does doing down during each few further having itself most myself nor off once
		other ought ourselves own same should since through under until where whom why yours
		yourself yourselves herself himself themselves theirs hers ours wasn't didn't
		don't isn't aren't couldn't shouldn't wouldn't we've i've i'm we're they're it's got
	`) {
		stopWords[w] = struct{}{}
	}
}

// WordFrequencies counts the lowercase words of all entry texts, skipping
// stop words and words shorter than three letters. The result is ordered by
// count, ties in first-seen order, and holds at most limit words. It is the
// input a word cloud renderer would consume.
func WordFrequencies(entries []models.Entry, limit int) []models.WordCount {
	var counts []models.WordCount
	index := make(map[string]int)

	for i := range entries {
		for _, word := range splitWords(entries[i].Text) {
			word = strings.Trim(word, "'")
			if len([]rune(word)) < minWordLength {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			if j, ok := index[word]; ok {
				counts[j].Count++
				continue
			}
			index[word] = len(counts)
			counts = append(counts, models.WordCount{Word: word, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	if counts == nil {
		counts = []models.WordCount{}
	}
	return counts
}

// splitWords returns the lowercase runs of letters in text. Apostrophes
// inside a word are kept so contractions reach the stop word list whole.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
