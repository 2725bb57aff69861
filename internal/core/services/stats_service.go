package services

import (
	"sort"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

// Count is a label with the number of assets carrying it
type Count struct {
	Name  string
	Count int
}

// Summary aggregates the loaded gallery
type Summary struct {
	Total      int
	Untagged   int
	Unassigned int // Assets without any program
	Programs   []Count
	Tags       []Count
}

// StatsService computes gallery statistics
type StatsService struct{}

// NewStatsService creates a new stats service
func NewStatsService() *StatsService {
	return &StatsService{}
}

// Summarize counts assets per program and per tag.
// Counts are sorted by count descending, then name.
func (s *StatsService) Summarize(assets []domain.Asset) Summary {
	programCounts := make(map[string]int)
	tagCounts := make(map[string]int)
	summary := Summary{Total: len(assets)}

	for _, a := range assets {
		if len(a.Tags) == 0 {
			summary.Untagged++
		}
		if len(a.Programs) == 0 {
			summary.Unassigned++
		}
		for _, p := range UniqueValues([]domain.Asset{a}, func(a domain.Asset) []string { return a.Programs }) {
			programCounts[p]++
		}
		for _, t := range UniqueValues([]domain.Asset{a}, func(a domain.Asset) []string { return a.Tags }) {
			tagCounts[t]++
		}
	}

	summary.Programs = sortCounts(programCounts)
	summary.Tags = sortCounts(tagCounts)
	return summary
}

func sortCounts(counts map[string]int) []Count {
	result := make([]Count, 0, len(counts))
	for name, n := range counts {
		result = append(result, Count{Name: name, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}
