package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
)

type AdRepositoryInterface interface {
	List(ctx context.Context) ([]*model.Ad, error)
	ListByAdGroup(ctx context.Context, adGroupID int64) ([]*model.Ad, error)
	GetByID(ctx context.Context, id int64) (*model.Ad, error)
	Create(ctx context.Context, a *model.Ad) error
	Update(ctx context.Context, a *model.Ad) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type AdRepository struct {
	DB *sql.DB
}

const adColumns = `id, ad_group_id, tipo_anuncio, numero_grupo, nomenclatura_pardot,
	nombre_anuncio, created_at, updated_at`

func scanAd(s rowScanner) (*model.Ad, error) {
	var a model.Ad
	err := s.Scan(
		&a.ID, &a.AdGroupID, &a.TipoAnuncio, &a.NumeroGrupo, &a.NomenclaturaPardot,
		&a.NombreAnuncio, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdRepository) Create(ctx context.Context, a *model.Ad) error {
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt
	query := `
		INSERT INTO ads (
			ad_group_id, tipo_anuncio, numero_grupo, nomenclatura_pardot,
			nombre_anuncio, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.AdGroupID, a.TipoAnuncio, a.NumeroGrupo, a.NomenclaturaPardot,
		a.NombreAnuncio, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
}

func (r *AdRepository) Update(ctx context.Context, a *model.Ad) error {
	a.UpdatedAt = now()
	query := `
		UPDATE ads
		SET ad_group_id=$1, tipo_anuncio=$2, numero_grupo=$3, nomenclatura_pardot=$4,
			nombre_anuncio=$5, updated_at=$6
		WHERE id=$7
	`
	res, err := r.DB.ExecContext(ctx, query,
		a.AdGroupID, a.TipoAnuncio, a.NumeroGrupo, a.NomenclaturaPardot,
		a.NombreAnuncio, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return err
	}
	if ok, err := affected(res); err != nil {
		return err
	} else if !ok {
		return appErrors.NewNotFound(model.EntityAd, a.ID)
	}
	return nil
}

func (r *AdRepository) GetByID(ctx context.Context, id int64) (*model.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE id=$1`
	a, err := scanAd(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound(model.EntityAd, id)
		}
		return nil, err
	}
	return a, nil
}

func (r *AdRepository) List(ctx context.Context) ([]*model.Ad, error) {
	return r.query(ctx, `SELECT `+adColumns+` FROM ads ORDER BY created_at DESC, id DESC`)
}

func (r *AdRepository) ListByAdGroup(ctx context.Context, adGroupID int64) ([]*model.Ad, error) {
	return r.query(ctx, `SELECT `+adColumns+` FROM ads WHERE ad_group_id=$1 `+byNumeroGrupo, adGroupID)
}

func (r *AdRepository) query(ctx context.Context, query string, args ...any) ([]*model.Ad, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ads := []*model.Ad{}
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, a)
	}
	return ads, rows.Err()
}

func (r *AdRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ads WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

var _ AdRepositoryInterface = (*AdRepository)(nil)
