package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const defaultSearchLimit = 10

// Category groups the tools of one provider for search.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Tools       []string `json:"tools"`
}

// Categories returns one category per provider in registration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Search ranks tools against a free-text query. An empty category searches every
// provider; limit <= 0 means the default of 10.
func (c *Catalog) Search(query, category string, limit int) []mcp.ToolSummary {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	query = strings.ToLower(strings.TrimSpace(query))

	type scored struct {
		summary mcp.ToolSummary
		score   int
	}
	var results []scored

	for _, cat := range c.categories {
		if category != "" && !strings.EqualFold(cat.Name, category) {
			continue
		}
		for _, name := range cat.Tools {
			entry := c.entries[name]
			summary := mcp.ToolSummary{
				Name:        name,
				Description: truncateDescription(entry.Spec.Description, 100),
				Category:    cat.Name,
			}

			score := matchScore(query, name, entry.Spec.Description, cat.Keywords)
			if query == "" {
				// Browsing a category lists everything in it.
				score = 1
			}
			if score > 0 {
				results = append(results, scored{summary: summary, score: score})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]mcp.ToolSummary, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		out = append(out, results[i].summary)
	}
	return out
}

func matchScore(query, name, description string, keywords []string) int {
	if query == "" {
		return 0
	}
	score := 0
	nameLower := strings.ToLower(name)

	if strings.Contains(nameLower, query) {
		score += 100
	}
	if fuzzy.Match(query, nameLower) {
		score += 50
	}
	if strings.Contains(strings.ToLower(description), query) {
		score += 30
	}
	for _, kw := range keywords {
		if strings.Contains(query, strings.ToLower(kw)) {
			score += 20
		}
	}
	return score
}

func truncateDescription(desc string, maxLen int) string {
	if len(desc) <= maxLen {
		return desc
	}
	return desc[:maxLen-3] + "..."
}
