package model

import "sort"

type AdGroupWithAds struct {
	AdGroup
	Ads []Ad `json:"ads"`
}

type CampaignWithAdGroups struct {
	Campaign
	AdGroups []AdGroupWithAds `json:"adGroups"`
}

// BuildHierarchy nests ad groups under their campaign and ads under their
// ad group. Campaign order is kept as given. Children are ordered by
// numero_grupo ascending, rows without a number last, ties by id.
// Orphans (a parent id not present in the input) are dropped.
func BuildHierarchy(campaigns []*Campaign, groups []*AdGroup, ads []*Ad) []CampaignWithAdGroups {
	adsByGroup := make(map[int64][]Ad)
	for _, a := range ads {
		adsByGroup[a.AdGroupID] = append(adsByGroup[a.AdGroupID], *a)
	}
	for id := range adsByGroup {
		sortAds(adsByGroup[id])
	}

	groupsByCampaign := make(map[int64][]AdGroupWithAds)
	for _, g := range groups {
		children := adsByGroup[g.ID]
		if children == nil {
			children = []Ad{}
		}
		groupsByCampaign[g.CampaignID] = append(groupsByCampaign[g.CampaignID], AdGroupWithAds{
			AdGroup: *g,
			Ads:     children,
		})
	}

	result := make([]CampaignWithAdGroups, 0, len(campaigns))
	for _, c := range campaigns {
		children := groupsByCampaign[c.ID]
		if children == nil {
			children = []AdGroupWithAds{}
		}
		sort.SliceStable(children, func(i, j int) bool {
			return numeroLess(children[i].NumeroGrupo, children[i].ID, children[j].NumeroGrupo, children[j].ID)
		})
		result = append(result, CampaignWithAdGroups{Campaign: *c, AdGroups: children})
	}
	return result
}

func sortAds(ads []Ad) {
	sort.SliceStable(ads, func(i, j int) bool {
		return numeroLess(ads[i].NumeroGrupo, ads[i].ID, ads[j].NumeroGrupo, ads[j].ID)
	})
}

func numeroLess(a *int, aID int64, b *int, bID int64) bool {
	switch {
	case a == nil && b == nil:
		return aID < bID
	case a == nil:
		return false
	case b == nil:
		return true
	case *a != *b:
		return *a < *b
	}
	return aID < bID
}
