package dispatchers

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestionDistance = 3

type suggestion struct {
	name     string
	distance int
}

// FindSimilar returns up to maxResults candidates within a small edit
// distance of input, closest first and then alphabetically.
func FindSimilar(input string, candidates []string, maxResults int) []string {
	in := strings.ToLower(input)
	seen := make(map[string]bool, len(candidates))

	var suggestions []suggestion
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true

		dist := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if dist <= maxSuggestionDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: c, distance: dist})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// Suggest proposes full paths close to a pathname that does not resolve.
// Only the first segment that fails is varied.
func (r *Registry) Suggest(pathname string, maxResults int) []string {
	path := r.SplitPath(pathname)

	r.mu.RLock()
	nodes, level := r.walk(path)
	var candidates []string
	if len(nodes) < len(path) && level != nil {
		for pair := level.Oldest(); pair != nil; pair = pair.Next() {
			candidates = append(candidates, pair.Key)
			if pair.Value != nil {
				candidates = append(candidates, pair.Value.Aliases...)
			}
		}
	}
	r.mu.RUnlock()

	if len(candidates) == 0 || path[len(nodes)] == "" {
		return nil
	}

	prefix := make([]string, len(nodes))
	for i, n := range nodes {
		prefix[i] = n.Name
	}

	similar := FindSimilar(path[len(nodes)], candidates, maxResults)
	for i, s := range similar {
		similar[i] = strings.Join(append(append([]string{}, prefix...), s), r.separator)
	}
	return similar
}
