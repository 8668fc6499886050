package export

import (
	"fmt"

	"github.com/unclebandit/campaign-admin/internal/model"
)

var HierarchyHeader = []any{
	"Campaña", "Medio", "Programa", "Facultad", "Tipo", "Línea",
	"Modalidad", "Lista Pardot", "URL", "Grupo", "FSA", "Cohorte",
	"Tipo Público", "Anuncio", "Tipo Anuncio", "Nomenclatura Pardot",
}

var SearchHeader = []any{
	"Campaña", "Medio", "Programa", "Facultad", "Tipo", "Grupos", "Anuncios",
}

// FlattenHierarchy returns the header followed by one row per ad, each
// carrying its campaign and ad group columns. Campaigns and groups
// without ads produce no row.
func FlattenHierarchy(campaigns []model.CampaignWithAdGroups) [][]any {
	rows := [][]any{HierarchyHeader}
	for _, c := range campaigns {
		for _, g := range c.AdGroups {
			grupo := fmt.Sprintf("%s - %s", optionalInt(g.NumeroGrupo), model.Str(g.NombreGrupo))
			for _, a := range g.Ads {
				rows = append(rows, []any{
					model.Str(c.NombreCampania),
					model.Str(c.Medio),
					model.Str(c.ProgramaInteres),
					model.Str(c.Facultad),
					model.Str(c.TipoCampana),
					model.Str(c.Linea),
					model.Str(c.ModalidadEstudio),
					model.Str(c.ListaPardot),
					model.Str(c.URLPrograma),
					grupo,
					model.Str(g.Fsa),
					model.Str(g.Cohorte),
					model.Str(g.TipoPublico),
					model.Str(a.NombreAnuncio),
					model.Str(a.TipoAnuncio),
					model.Str(a.NomenclaturaPardot),
				})
			}
		}
	}
	return rows
}

// SearchResultRows returns the header followed by one row per result.
func SearchResultRows(results []model.CampaignSearchResult) [][]any {
	rows := [][]any{SearchHeader}
	for _, r := range results {
		rows = append(rows, []any{
			model.Str(r.NombreCampania),
			model.Str(r.Medio),
			model.Str(r.ProgramaInteres),
			model.Str(r.Facultad),
			model.Str(r.TipoCampana),
			r.GrupoCount,
			r.AnuncioCount,
		})
	}
	return rows
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprint(*n)
}
