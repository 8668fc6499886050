package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
)

type ProgramRepositoryInterface interface {
	List(ctx context.Context) ([]*model.Program, error)
	GetByID(ctx context.Context, id int64) (*model.Program, error)
	Create(ctx context.Context, p *model.Program) error
	Update(ctx context.Context, p *model.Program) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

type ProgramRepository struct {
	DB *sql.DB
}

const programColumns = `id, nombre_programa, nomenclatura_programa, linea_negocio, modalidad,
	facultad, nomenclatura_facultad, codigo_banner, lista_pardot, periodo, codigo_carrera,
	nombre_programa2, link_programa, pp1, pp1d, pp2, pp2d, pp3, pp3d, pp4, pp4d,
	created_at, updated_at`

func scanProgram(s rowScanner) (*model.Program, error) {
	var p model.Program
	err := s.Scan(
		&p.ID, &p.NombrePrograma, &p.NomenclaturaPrograma, &p.LineaNegocio, &p.Modalidad,
		&p.Facultad, &p.NomenclaturaFacultad, &p.CodigoBanner, &p.ListaPardot, &p.Periodo, &p.CodigoCarrera,
		&p.NombrePrograma2, &p.LinkPrograma, &p.PP1, &p.PP1D, &p.PP2, &p.PP2D, &p.PP3, &p.PP3D, &p.PP4, &p.PP4D,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepository) Create(ctx context.Context, p *model.Program) error {
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt
	query := `
		INSERT INTO programs (
			nombre_programa, nomenclatura_programa, linea_negocio, modalidad, facultad,
			nomenclatura_facultad, codigo_banner, lista_pardot, periodo, codigo_carrera,
			nombre_programa2, link_programa, pp1, pp1d, pp2, pp2d, pp3, pp3d, pp4, pp4d,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.NombrePrograma, p.NomenclaturaPrograma, p.LineaNegocio, p.Modalidad, p.Facultad,
		p.NomenclaturaFacultad, p.CodigoBanner, p.ListaPardot, p.Periodo, p.CodigoCarrera,
		p.NombrePrograma2, p.LinkPrograma, p.PP1, p.PP1D, p.PP2, p.PP2D, p.PP3, p.PP3D, p.PP4, p.PP4D,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *ProgramRepository) Update(ctx context.Context, p *model.Program) error {
	p.UpdatedAt = now()
	query := `
		UPDATE programs
		SET nombre_programa=$1, nomenclatura_programa=$2, linea_negocio=$3, modalidad=$4,
			facultad=$5, nomenclatura_facultad=$6, codigo_banner=$7, lista_pardot=$8,
			periodo=$9, codigo_carrera=$10, nombre_programa2=$11, link_programa=$12,
			pp1=$13, pp1d=$14, pp2=$15, pp2d=$16, pp3=$17, pp3d=$18, pp4=$19, pp4d=$20,
			updated_at=$21
		WHERE id=$22
	`
	res, err := r.DB.ExecContext(ctx, query,
		p.NombrePrograma, p.NomenclaturaPrograma, p.LineaNegocio, p.Modalidad,
		p.Facultad, p.NomenclaturaFacultad, p.CodigoBanner, p.ListaPardot,
		p.Periodo, p.CodigoCarrera, p.NombrePrograma2, p.LinkPrograma,
		p.PP1, p.PP1D, p.PP2, p.PP2D, p.PP3, p.PP3D, p.PP4, p.PP4D,
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	if ok, err := affected(res); err != nil {
		return err
	} else if !ok {
		return appErrors.NewNotFound(model.EntityProgram, p.ID)
	}
	return nil
}

func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*model.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id=$1`
	p, err := scanProgram(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound(model.EntityProgram, id)
		}
		return nil, err
	}
	return p, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]*model.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []*model.Program{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *ProgramRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM programs WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *ProgramRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM programs`).Scan(&n)
	return n, err
}

var _ ProgramRepositoryInterface = (*ProgramRepository)(nil)
