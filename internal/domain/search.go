package domain

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SearchResult is a ranked match from a search over the index
type SearchResult struct {
	Tier  Tier
	Code  string
	Name  string
	Score int
}

// SearchOptions controls which entries a search considers
type SearchOptions struct {
	// Level restricts matching to a single tier. TierUnknown searches all.
	Level Tier
	// IncludeSections lets section dividers match at the ID tier.
	IncludeSections bool
}

// Search finds entries whose name contains every query word
// (case-insensitive, AND semantics). Results are ordered by descending
// score, ties broken by ascending code.
func (x *Index) Search(query string, opts SearchOptions) []SearchResult {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}
	full := strings.Join(words, " ")

	var results []SearchResult

	if opts.Level == TierUnknown || opts.Level == TierArea {
		for _, area := range x.Areas() {
			if matchesAllWords(area.Name, words) {
				results = append(results, SearchResult{
					Tier:  TierArea,
					Code:  area.Code,
					Name:  area.Name,
					Score: scoreMatch(area.Name, full),
				})
			}
		}
	}

	if opts.Level == TierUnknown || opts.Level == TierCategory {
		for _, area := range x.Areas() {
			for _, cat := range area.Categories() {
				if matchesAllWords(cat.Name, words) {
					results = append(results, SearchResult{
						Tier:  TierCategory,
						Code:  cat.Code,
						Name:  cat.Name,
						Score: scoreMatch(cat.Name, full),
					})
				}
			}
		}
	}

	if opts.Level == TierUnknown || opts.Level == TierID {
		for _, area := range x.Areas() {
			for _, cat := range area.Categories() {
				for _, id := range cat.IDs() {
					if id.Section && !opts.IncludeSections {
						continue
					}
					if matchesAllWords(id.Name, words) {
						results = append(results, SearchResult{
							Tier:  TierID,
							Code:  id.Code,
							Name:  id.Name,
							Score: scoreMatch(id.Name, full),
						})
					}
				}
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Code < results[j].Code
	})

	return results
}

func matchesAllWords(name string, words []string) bool {
	lower := strings.ToLower(name)
	for _, w := range words {
		if !strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

// scoreMatch prefers exact substring hits, then shorter names.
// Name length counts runes: names carry emoji and markers.
func scoreMatch(name, query string) int {
	length := utf8.RuneCountInString(name)
	if strings.Contains(strings.ToLower(name), query) {
		return 100 - length
	}
	return -length
}
