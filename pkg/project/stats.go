package project

// Stats summarizes a categorized project set.
type Stats struct {
	Total      int      `json:"total"`
	Featured   int      `json:"featured"`
	Other      int      `json:"other"`
	Archived   int      `json:"archived"`
	Hidden     int      `json:"hidden"`
	TotalStars int      `json:"total_stars"`
	TotalForks int      `json:"total_forks"`
	Languages  []string `json:"languages"`
}

// ComputeStats counts projects per bucket and aggregates stars, forks and
// distinct languages in first-seen order.
func ComputeStats(b Buckets) Stats {
	s := Stats{
		Total:     b.Len(),
		Featured:  len(b.Featured),
		Other:     len(b.Other),
		Archived:  len(b.Archived),
		Hidden:    len(b.Hidden),
		Languages: []string{},
	}

	seen := make(map[string]bool)
	for _, p := range b.All() {
		s.TotalStars += p.Stars
		s.TotalForks += p.Forks
		if p.Language != "" && !seen[p.Language] {
			seen[p.Language] = true
			s.Languages = append(s.Languages, p.Language)
		}
	}
	return s
}
