package model

import "time"

type AdGroup struct {
	ID                 int64     `db:"id" json:"id"`
	CampaignID         int64     `db:"campaign_id" json:"campaign_id"`
	Fsa                *string   `db:"fsa" json:"fsa"`
	Cohorte            *string   `db:"cohorte" json:"cohorte"`
	TipoPublico        *string   `db:"tipo_publico" json:"tipo_publico"`
	NumeroGrupo        *int      `db:"numero_grupo" json:"numero_grupo"`
	NomenclaturaPardot *string   `db:"nomenclatura_pardot" json:"nomenclatura_pardot"`
	NombreGrupo        *string   `db:"nombre_grupo" json:"nombre_grupo"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type AdGroupInput struct {
	CampaignID         int64   `json:"campaign_id" validate:"required,gt=0"`
	Fsa                *string `json:"fsa"`
	Cohorte            *string `json:"cohorte"`
	TipoPublico        *string `json:"tipo_publico"`
	NumeroGrupo        *int    `json:"numero_grupo"`
	NomenclaturaPardot *string `json:"nomenclatura_pardot"`
	NombreGrupo        *string `json:"nombre_grupo"`
}

func (in AdGroupInput) AdGroup() *AdGroup {
	return &AdGroup{
		CampaignID:         in.CampaignID,
		Fsa:                in.Fsa,
		Cohorte:            in.Cohorte,
		TipoPublico:        in.TipoPublico,
		NumeroGrupo:        in.NumeroGrupo,
		NomenclaturaPardot: in.NomenclaturaPardot,
		NombreGrupo:        in.NombreGrupo,
	}
}

type AdGroupPatch struct {
	CampaignID         *int64           `json:"campaign_id" validate:"omitnil,gt=0"`
	Fsa                Optional[string] `json:"fsa"`
	Cohorte            Optional[string] `json:"cohorte"`
	TipoPublico        Optional[string] `json:"tipo_publico"`
	NumeroGrupo        Optional[int]    `json:"numero_grupo"`
	NomenclaturaPardot Optional[string] `json:"nomenclatura_pardot"`
	NombreGrupo        Optional[string] `json:"nombre_grupo"`
}

func (p AdGroupPatch) Apply(g *AdGroup) {
	if p.CampaignID != nil {
		g.CampaignID = *p.CampaignID
	}
	apply(&g.Fsa, p.Fsa)
	apply(&g.Cohorte, p.Cohorte)
	apply(&g.TipoPublico, p.TipoPublico)
	apply(&g.NumeroGrupo, p.NumeroGrupo)
	apply(&g.NomenclaturaPardot, p.NomenclaturaPardot)
	apply(&g.NombreGrupo, p.NombreGrupo)
}
