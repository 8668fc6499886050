package model

import "strings"

// SearchFilter holds the optional criteria of a campaign search. An empty
// field places no constraint; all non-empty fields must match.
type SearchFilter struct {
	NombreCampania  string `json:"nombre_campania,omitempty"`
	Medio           string `json:"medio,omitempty"`
	ProgramaInteres string `json:"programa_interes,omitempty"`
	Facultad        string `json:"facultad,omitempty"`
	TipoCampana     string `json:"tipo_campana,omitempty"`
}

// Matches reports whether c satisfies every criterion set on f. Name and
// program match as case-insensitive substrings, the rest exactly. A NULL
// column never matches a set criterion.
func (f SearchFilter) Matches(c *Campaign) bool {
	if f.NombreCampania != "" && !containsFold(c.NombreCampania, f.NombreCampania) {
		return false
	}
	if f.Medio != "" && !equals(c.Medio, f.Medio) {
		return false
	}
	if f.ProgramaInteres != "" && !containsFold(c.ProgramaInteres, f.ProgramaInteres) {
		return false
	}
	if f.Facultad != "" && !equals(c.Facultad, f.Facultad) {
		return false
	}
	if f.TipoCampana != "" && !equals(c.TipoCampana, f.TipoCampana) {
		return false
	}
	return true
}

func containsFold(v *string, sub string) bool {
	if v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*v), strings.ToLower(sub))
}

func equals(v *string, want string) bool {
	return v != nil && *v == want
}

// CampaignCounts is the number of ad groups of a campaign and the number
// of ads across those groups.
type CampaignCounts struct {
	Groups int
	Ads    int
}

type CampaignSearchResult struct {
	Campaign
	GrupoCount   int `json:"grupo_count"`
	AnuncioCount int `json:"anuncio_count"`
}

// WithCounts pairs each campaign with its counts, keeping the input order.
// Campaigns absent from counts get zero for both.
func WithCounts(campaigns []*Campaign, counts map[int64]CampaignCounts) []CampaignSearchResult {
	results := make([]CampaignSearchResult, 0, len(campaigns))
	for _, c := range campaigns {
		n := counts[c.ID]
		results = append(results, CampaignSearchResult{
			Campaign:     *c,
			GrupoCount:   n.Groups,
			AnuncioCount: n.Ads,
		})
	}
	return results
}
