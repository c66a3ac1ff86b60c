// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package insights

import (
	"sort"
	"strings"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Activity cluster names.
const (
	ClusterOutdoor  = "Outdoor"
	ClusterCultural = "Cultural"
	ClusterUrban    = "Urban"
	ClusterGeneral  = "General"
)

// clusterMatcher is the static tag -> cluster rule table. A tag joins every
// cluster one of whose keywords it contains.
var clusterMatcher = cache.NewKeywordGroups(
	[]string{ClusterOutdoor, ClusterCultural, ClusterUrban},
	map[string][]string{
		ClusterOutdoor: {
			"hiking", "camping", "beach", "mountain", "nature", "trek",
			"outdoor", "adventure", "ski", "surf", "park", "lake",
		},
		ClusterCultural: {
			"museum", "history", "art", "culture", "temple", "gallery",
			"heritage", "festival",
		},
		ClusterUrban: {
			"city", "shopping", "nightlife", "food", "restaurant", "cafe",
			"urban", "architecture",
		},
	},
)

// tagCounts counts lowercase tags over all entries in first-seen order.
func tagCounts(entries []models.Entry) []models.TagCount {
	var counts []models.TagCount
	index := make(map[string]int)
	for i := range entries {
		for _, tag := range entries[i].Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			if j, ok := index[tag]; ok {
				counts[j].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, models.TagCount{Tag: tag, Count: 1})
		}
	}
	return counts
}

// distinctTags returns the lowercase tags of all entries, first-seen.
func distinctTags(entries []models.Entry) []string {
	counts := tagCounts(entries)
	tags := make([]string, len(counts))
	for i, c := range counts {
		tags[i] = c.Tag
	}
	return tags
}

// ActivityPatterns returns the topN most used tags and the tag clusters.
// With fewer than minClusterTags distinct tags all tags go to "General".
func ActivityPatterns(entries []models.Entry, topN, minClusterTags int) models.ActivityPatterns {
	out := emptyActivityPatterns()

	counts := tagCounts(entries)
	if len(counts) == 0 {
		return out
	}

	tags := make([]string, len(counts))
	for i, c := range counts {
		tags[i] = c.Tag
	}
	out.Clusters = clusterTags(tags, minClusterTags)

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > topN {
		counts = counts[:topN]
	}
	out.Patterns = append(out.Patterns, counts...)
	return out
}

func clusterTags(tags []string, minClusterTags int) map[string][]string {
	if len(tags) < minClusterTags {
		return map[string][]string{ClusterGeneral: tags}
	}

	clusters := make(map[string][]string)
	for _, tag := range tags {
		for _, cluster := range clusterMatcher.Values(tag) {
			clusters[cluster] = append(clusters[cluster], tag)
		}
	}
	return clusters
}
