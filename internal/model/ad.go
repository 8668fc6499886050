package model

import "time"

type Ad struct {
	ID                 int64     `db:"id" json:"id"`
	AdGroupID          int64     `db:"ad_group_id" json:"ad_group_id"`
	TipoAnuncio        *string   `db:"tipo_anuncio" json:"tipo_anuncio"`
	NumeroGrupo        *int      `db:"numero_grupo" json:"numero_grupo"`
	NomenclaturaPardot *string   `db:"nomenclatura_pardot" json:"nomenclatura_pardot"`
	NombreAnuncio      *string   `db:"nombre_anuncio" json:"nombre_anuncio"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type AdInput struct {
	AdGroupID          int64   `json:"ad_group_id" validate:"required,gt=0"`
	TipoAnuncio        *string `json:"tipo_anuncio"`
	NumeroGrupo        *int    `json:"numero_grupo"`
	NomenclaturaPardot *string `json:"nomenclatura_pardot"`
	NombreAnuncio      *string `json:"nombre_anuncio"`
}

func (in AdInput) Ad() *Ad {
	return &Ad{
		AdGroupID:          in.AdGroupID,
		TipoAnuncio:        in.TipoAnuncio,
		NumeroGrupo:        in.NumeroGrupo,
		NomenclaturaPardot: in.NomenclaturaPardot,
		NombreAnuncio:      in.NombreAnuncio,
	}
}

type AdPatch struct {
	AdGroupID          *int64           `json:"ad_group_id" validate:"omitnil,gt=0"`
	TipoAnuncio        Optional[string] `json:"tipo_anuncio"`
	NumeroGrupo        Optional[int]    `json:"numero_grupo"`
	NomenclaturaPardot Optional[string] `json:"nomenclatura_pardot"`
	NombreAnuncio      Optional[string] `json:"nombre_anuncio"`
}

func (p AdPatch) Apply(a *Ad) {
	if p.AdGroupID != nil {
		a.AdGroupID = *p.AdGroupID
	}
	apply(&a.TipoAnuncio, p.TipoAnuncio)
	apply(&a.NumeroGrupo, p.NumeroGrupo)
	apply(&a.NomenclaturaPardot, p.NomenclaturaPardot)
	apply(&a.NombreAnuncio, p.NombreAnuncio)
}
