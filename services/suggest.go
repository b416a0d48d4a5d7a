package services

import (
	"sort"
	"strings"

	"backoffice/dto"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const minSuggestionSimilarity = 0.3

// NormalizeQuery chuẩn hóa chuỗi tìm kiếm: bỏ dấu, lowercase, trim
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// newClientMatcher tạo matcher cho danh sách tên khách hàng
func newClientMatcher(names []string) *closestmatch.ClosestMatch {
	return closestmatch.New(names, []int{2, 3})
}

// similarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SuggestClients gợi ý tối đa limit tên khách hàng gần với query nhất,
// dùng cho autocomplete trên dashboard. Tên được so khớp sau khi chuẩn hóa
// nên "nguyen" vẫn khớp "Nguyễn".
func SuggestClients(clients []string, query string, limit int) []dto.ClientSuggestion {
	if limit <= 0 {
		limit = 5
	}

	normalizedQuery := NormalizeQuery(query)
	if normalizedQuery == "" || len(clients) == 0 {
		return []dto.ClientSuggestion{}
	}

	originals := make(map[string]string, len(clients))
	keys := make([]string, 0, len(clients))
	for _, name := range clients {
		n := NormalizeQuery(name)
		if n == "" {
			continue
		}
		if _, ok := originals[n]; !ok {
			originals[n] = name
			keys = append(keys, n)
		}
	}

	matcher := newClientMatcher(keys)
	candidates := matcher.ClosestN(normalizedQuery, limit*2)

	suggestions := make([]dto.ClientSuggestion, 0, limit)
	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true

		score := similarity(normalizedQuery, candidate)
		if score < minSuggestionSimilarity && !strings.Contains(candidate, normalizedQuery) {
			continue
		}
		suggestions = append(suggestions, dto.ClientSuggestion{
			Name:       originals[candidate],
			Similarity: score,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
