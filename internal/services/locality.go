package services

import "github.com/vishyarjun/fyyur/internal/domain"

type localityKey struct {
	city  string
	state string
}

// groupByLocality buckets rows by (city, state). Buckets keep the order in
// which their first member appears in rows, and members keep row order.
func groupByLocality(rows []*domain.ListingSummary, add func(g *domain.LocalityGroup, e *domain.EntitySummary)) []*domain.LocalityGroup {
	groups := make([]*domain.LocalityGroup, 0)
	index := make(map[localityKey]*domain.LocalityGroup)
	for _, row := range rows {
		key := localityKey{city: row.City, state: row.State}
		g, ok := index[key]
		if !ok {
			g = &domain.LocalityGroup{City: row.City, State: row.State}
			index[key] = g
			groups = append(groups, g)
		}
		add(g, summarize(row))
	}
	return groups
}

func summarize(row *domain.ListingSummary) *domain.EntitySummary {
	return &domain.EntitySummary{ID: row.ID, Name: row.Name, NumUpcomingShows: row.NumUpcomingShows}
}

func summarizeAll(rows []*domain.ListingSummary) []*domain.EntitySummary {
	out := make([]*domain.EntitySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summarize(row))
	}
	return out
}

func searchResult(term string, rows []*domain.ListingSummary) *domain.SearchResult {
	data := summarizeAll(rows)
	return &domain.SearchResult{SearchTerm: term, Count: len(data), Data: data}
}
