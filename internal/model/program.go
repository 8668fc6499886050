package model

import "time"

// Program is a reference row used to fill the campaign form dropdowns.
// Campaigns copy the program name as free text; there is no foreign key.
type Program struct {
	ID                   int64     `db:"id" json:"id"`
	NombrePrograma       *string   `db:"nombre_programa" json:"nombre_programa"`
	NomenclaturaPrograma *string   `db:"nomenclatura_programa" json:"nomenclatura_programa"`
	LineaNegocio         *string   `db:"linea_negocio" json:"linea_negocio"`
	Modalidad            *string   `db:"modalidad" json:"modalidad"`
	Facultad             *string   `db:"facultad" json:"facultad"`
	NomenclaturaFacultad *string   `db:"nomenclatura_facultad" json:"nomenclatura_facultad"`
	CodigoBanner         *string   `db:"codigo_banner" json:"codigo_banner"`
	ListaPardot          *string   `db:"lista_pardot" json:"lista_pardot"`
	Periodo              *string   `db:"periodo" json:"periodo"`
	CodigoCarrera        *string   `db:"codigo_carrera" json:"codigo_carrera"`
	NombrePrograma2      *string   `db:"nombre_programa2" json:"nombre_programa2"`
	LinkPrograma         *string   `db:"link_programa" json:"link_programa"`
	PP1                  *string   `db:"pp1" json:"pp1"`
	PP1D                 *string   `db:"pp1d" json:"pp1d"`
	PP2                  *string   `db:"pp2" json:"pp2"`
	PP2D                 *string   `db:"pp2d" json:"pp2d"`
	PP3                  *string   `db:"pp3" json:"pp3"`
	PP3D                 *string   `db:"pp3d" json:"pp3d"`
	PP4                  *string   `db:"pp4" json:"pp4"`
	PP4D                 *string   `db:"pp4d" json:"pp4d"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

type ProgramInput struct {
	NombrePrograma       string  `json:"nombre_programa" validate:"required"`
	NomenclaturaPrograma *string `json:"nomenclatura_programa"`
	LineaNegocio         *string `json:"linea_negocio"`
	Modalidad            *string `json:"modalidad"`
	Facultad             *string `json:"facultad"`
	NomenclaturaFacultad *string `json:"nomenclatura_facultad"`
	CodigoBanner         *string `json:"codigo_banner"`
	ListaPardot          *string `json:"lista_pardot"`
	Periodo              *string `json:"periodo"`
	CodigoCarrera        *string `json:"codigo_carrera"`
	NombrePrograma2      *string `json:"nombre_programa2"`
	LinkPrograma         *string `json:"link_programa"`
	PP1                  *string `json:"pp1"`
	PP1D                 *string `json:"pp1d"`
	PP2                  *string `json:"pp2"`
	PP2D                 *string `json:"pp2d"`
	PP3                  *string `json:"pp3"`
	PP3D                 *string `json:"pp3d"`
	PP4                  *string `json:"pp4"`
	PP4D                 *string `json:"pp4d"`
}

func (in ProgramInput) Program() *Program {
	return &Program{
		NombrePrograma:       &in.NombrePrograma,
		NomenclaturaPrograma: in.NomenclaturaPrograma,
		LineaNegocio:         in.LineaNegocio,
		Modalidad:            in.Modalidad,
		Facultad:             in.Facultad,
		NomenclaturaFacultad: in.NomenclaturaFacultad,
		CodigoBanner:         in.CodigoBanner,
		ListaPardot:          in.ListaPardot,
		Periodo:              in.Periodo,
		CodigoCarrera:        in.CodigoCarrera,
		NombrePrograma2:      in.NombrePrograma2,
		LinkPrograma:         in.LinkPrograma,
		PP1:                  in.PP1,
		PP1D:                 in.PP1D,
		PP2:                  in.PP2,
		PP2D:                 in.PP2D,
		PP3:                  in.PP3,
		PP3D:                 in.PP3D,
		PP4:                  in.PP4,
		PP4D:                 in.PP4D,
	}
}

type ProgramPatch struct {
	NombrePrograma       Optional[string] `json:"nombre_programa" validate:"omitnil,required"`
	NomenclaturaPrograma Optional[string] `json:"nomenclatura_programa"`
	LineaNegocio         Optional[string] `json:"linea_negocio"`
	Modalidad            Optional[string] `json:"modalidad"`
	Facultad             Optional[string] `json:"facultad"`
	NomenclaturaFacultad Optional[string] `json:"nomenclatura_facultad"`
	CodigoBanner         Optional[string] `json:"codigo_banner"`
	ListaPardot          Optional[string] `json:"lista_pardot"`
	Periodo              Optional[string] `json:"periodo"`
	CodigoCarrera        Optional[string] `json:"codigo_carrera"`
	NombrePrograma2      Optional[string] `json:"nombre_programa2"`
	LinkPrograma         Optional[string] `json:"link_programa"`
	PP1                  Optional[string] `json:"pp1"`
	PP1D                 Optional[string] `json:"pp1d"`
	PP2                  Optional[string] `json:"pp2"`
	PP2D                 Optional[string] `json:"pp2d"`
	PP3                  Optional[string] `json:"pp3"`
	PP3D                 Optional[string] `json:"pp3d"`
	PP4                  Optional[string] `json:"pp4"`
	PP4D                 Optional[string] `json:"pp4d"`
}

func (p ProgramPatch) Apply(pr *Program) {
	apply(&pr.NombrePrograma, p.NombrePrograma)
	apply(&pr.NomenclaturaPrograma, p.NomenclaturaPrograma)
	apply(&pr.LineaNegocio, p.LineaNegocio)
	apply(&pr.Modalidad, p.Modalidad)
	apply(&pr.Facultad, p.Facultad)
	apply(&pr.NomenclaturaFacultad, p.NomenclaturaFacultad)
	apply(&pr.CodigoBanner, p.CodigoBanner)
	apply(&pr.ListaPardot, p.ListaPardot)
	apply(&pr.Periodo, p.Periodo)
	apply(&pr.CodigoCarrera, p.CodigoCarrera)
	apply(&pr.NombrePrograma2, p.NombrePrograma2)
	apply(&pr.LinkPrograma, p.LinkPrograma)
	apply(&pr.PP1, p.PP1)
	apply(&pr.PP1D, p.PP1D)
	apply(&pr.PP2, p.PP2)
	apply(&pr.PP2D, p.PP2D)
	apply(&pr.PP3, p.PP3)
	apply(&pr.PP3D, p.PP3D)
	apply(&pr.PP4, p.PP4)
	apply(&pr.PP4D, p.PP4D)
}
