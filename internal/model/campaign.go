// internal/model/campaign.go
package model

import "time"

type Campaign struct {
	ID                      int64     `db:"id" json:"id"`
	Medio                   *string   `db:"medio" json:"medio"`
	ProgramaInteres         *string   `db:"programa_interes" json:"programa_interes"`
	TipoCampana             *string   `db:"tipo_campana" json:"tipo_campana"`
	NomenclaturaPrograma    *string   `db:"nomenclatura_programa" json:"nomenclatura_programa"`
	ModalidadEstudio        *string   `db:"modalidad_estudio" json:"modalidad_estudio"`
	Linea                   *string   `db:"linea" json:"linea"`
	Facultad                *string   `db:"facultad" json:"facultad"`
	NomenclaturaModalidad   *string   `db:"nomenclatura_modalidad" json:"nomenclatura_modalidad"`
	NomenclaturaLinea       *string   `db:"nomenclatura_linea" json:"nomenclatura_linea"`
	NomenclaturaTipoCampana *string   `db:"nomenclatura_tipo_campana" json:"nomenclatura_tipo_campana"`
	NomenclaturaModalidad3  *string   `db:"nomenclatura_modalidad3" json:"nomenclatura_modalidad3"`
	NombreSF                *string   `db:"nombre_sf" json:"nombre_sf"`
	URLPrograma             *string   `db:"url_programa" json:"url_programa"`
	ListaPardot             *string   `db:"lista_pardot" json:"lista_pardot"`
	NombreCampania          *string   `db:"nombre_campania" json:"nombre_campania"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time `db:"updated_at" json:"updated_at"`
}

// CampaignInput is the create payload. The four string fields are the
// ones the admin form cannot leave blank.
type CampaignInput struct {
	NombreCampania          string  `json:"nombre_campania" validate:"required"`
	Medio                   string  `json:"medio" validate:"required"`
	ProgramaInteres         string  `json:"programa_interes" validate:"required"`
	TipoCampana             string  `json:"tipo_campana" validate:"required"`
	NomenclaturaPrograma    *string `json:"nomenclatura_programa"`
	ModalidadEstudio        *string `json:"modalidad_estudio"`
	Linea                   *string `json:"linea"`
	Facultad                *string `json:"facultad"`
	NomenclaturaModalidad   *string `json:"nomenclatura_modalidad"`
	NomenclaturaLinea       *string `json:"nomenclatura_linea"`
	NomenclaturaTipoCampana *string `json:"nomenclatura_tipo_campana"`
	NomenclaturaModalidad3  *string `json:"nomenclatura_modalidad3"`
	NombreSF                *string `json:"nombre_sf"`
	URLPrograma             *string `json:"url_programa"`
	ListaPardot             *string `json:"lista_pardot"`
}

func (in CampaignInput) Campaign() *Campaign {
	return &Campaign{
		NombreCampania:          &in.NombreCampania,
		Medio:                   &in.Medio,
		ProgramaInteres:         &in.ProgramaInteres,
		TipoCampana:             &in.TipoCampana,
		NomenclaturaPrograma:    in.NomenclaturaPrograma,
		ModalidadEstudio:        in.ModalidadEstudio,
		Linea:                   in.Linea,
		Facultad:                in.Facultad,
		NomenclaturaModalidad:   in.NomenclaturaModalidad,
		NomenclaturaLinea:       in.NomenclaturaLinea,
		NomenclaturaTipoCampana: in.NomenclaturaTipoCampana,
		NomenclaturaModalidad3:  in.NomenclaturaModalidad3,
		NombreSF:                in.NombreSF,
		URLPrograma:             in.URLPrograma,
		ListaPardot:             in.ListaPardot,
	}
}

// CampaignPatch lists every field a partial update may touch. Absent keys
// leave the column as is; null clears an optional column.
type CampaignPatch struct {
	NombreCampania          Optional[string] `json:"nombre_campania" validate:"omitnil,required"`
	Medio                   Optional[string] `json:"medio" validate:"omitnil,required"`
	ProgramaInteres         Optional[string] `json:"programa_interes" validate:"omitnil,required"`
	TipoCampana             Optional[string] `json:"tipo_campana" validate:"omitnil,required"`
	NomenclaturaPrograma    Optional[string] `json:"nomenclatura_programa"`
	ModalidadEstudio        Optional[string] `json:"modalidad_estudio"`
	Linea                   Optional[string] `json:"linea"`
	Facultad                Optional[string] `json:"facultad"`
	NomenclaturaModalidad   Optional[string] `json:"nomenclatura_modalidad"`
	NomenclaturaLinea       Optional[string] `json:"nomenclatura_linea"`
	NomenclaturaTipoCampana Optional[string] `json:"nomenclatura_tipo_campana"`
	NomenclaturaModalidad3  Optional[string] `json:"nomenclatura_modalidad3"`
	NombreSF                Optional[string] `json:"nombre_sf"`
	URLPrograma             Optional[string] `json:"url_programa"`
	ListaPardot             Optional[string] `json:"lista_pardot"`
}

func (p CampaignPatch) Apply(c *Campaign) {
	apply(&c.NombreCampania, p.NombreCampania)
	apply(&c.Medio, p.Medio)
	apply(&c.ProgramaInteres, p.ProgramaInteres)
	apply(&c.TipoCampana, p.TipoCampana)
	apply(&c.NomenclaturaPrograma, p.NomenclaturaPrograma)
	apply(&c.ModalidadEstudio, p.ModalidadEstudio)
	apply(&c.Linea, p.Linea)
	apply(&c.Facultad, p.Facultad)
	apply(&c.NomenclaturaModalidad, p.NomenclaturaModalidad)
	apply(&c.NomenclaturaLinea, p.NomenclaturaLinea)
	apply(&c.NomenclaturaTipoCampana, p.NomenclaturaTipoCampana)
	apply(&c.NomenclaturaModalidad3, p.NomenclaturaModalidad3)
	apply(&c.NombreSF, p.NombreSF)
	apply(&c.URLPrograma, p.URLPrograma)
	apply(&c.ListaPardot, p.ListaPardot)
}

// Str returns the value behind p, or "" when p is nil.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func StrPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }
