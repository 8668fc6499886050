package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
)

type AdGroupRepositoryInterface interface {
	List(ctx context.Context) ([]*model.AdGroup, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]*model.AdGroup, error)
	GetByID(ctx context.Context, id int64) (*model.AdGroup, error)
	Create(ctx context.Context, g *model.AdGroup) error
	Update(ctx context.Context, g *model.AdGroup) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type AdGroupRepository struct {
	DB *sql.DB
}

const adGroupColumns = `id, campaign_id, fsa, cohorte, tipo_publico, numero_grupo,
	nomenclatura_pardot, nombre_grupo, created_at, updated_at`

// NULL numbers sort last on both engines.
const byNumeroGrupo = `ORDER BY CASE WHEN numero_grupo IS NULL THEN 1 ELSE 0 END, numero_grupo, id`

func scanAdGroup(s rowScanner) (*model.AdGroup, error) {
	var g model.AdGroup
	err := s.Scan(
		&g.ID, &g.CampaignID, &g.Fsa, &g.Cohorte, &g.TipoPublico, &g.NumeroGrupo,
		&g.NomenclaturaPardot, &g.NombreGrupo, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *AdGroupRepository) Create(ctx context.Context, g *model.AdGroup) error {
	g.CreatedAt = now()
	g.UpdatedAt = g.CreatedAt
	query := `
		INSERT INTO ad_groups (
			campaign_id, fsa, cohorte, tipo_publico, numero_grupo,
			nomenclatura_pardot, nombre_grupo, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		g.CampaignID, g.Fsa, g.Cohorte, g.TipoPublico, g.NumeroGrupo,
		g.NomenclaturaPardot, g.NombreGrupo, g.CreatedAt, g.UpdatedAt,
	).Scan(&g.ID)
}

func (r *AdGroupRepository) Update(ctx context.Context, g *model.AdGroup) error {
	g.UpdatedAt = now()
	query := `
		UPDATE ad_groups
		SET campaign_id=$1, fsa=$2, cohorte=$3, tipo_publico=$4, numero_grupo=$5,
			nomenclatura_pardot=$6, nombre_grupo=$7, updated_at=$8
		WHERE id=$9
	`
	res, err := r.DB.ExecContext(ctx, query,
		g.CampaignID, g.Fsa, g.Cohorte, g.TipoPublico, g.NumeroGrupo,
		g.NomenclaturaPardot, g.NombreGrupo, g.UpdatedAt, g.ID,
	)
	if err != nil {
		return err
	}
	if ok, err := affected(res); err != nil {
		return err
	} else if !ok {
		return appErrors.NewNotFound(model.EntityAdGroup, g.ID)
	}
	return nil
}

func (r *AdGroupRepository) GetByID(ctx context.Context, id int64) (*model.AdGroup, error) {
	query := `SELECT ` + adGroupColumns + ` FROM ad_groups WHERE id=$1`
	g, err := scanAdGroup(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound(model.EntityAdGroup, id)
		}
		return nil, err
	}
	return g, nil
}

func (r *AdGroupRepository) List(ctx context.Context) ([]*model.AdGroup, error) {
	return r.query(ctx, `SELECT `+adGroupColumns+` FROM ad_groups ORDER BY created_at DESC, id DESC`)
}

// ListByCampaign returns the campaign's ad groups by numero_grupo. An
// unknown campaign yields an empty slice.
func (r *AdGroupRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]*model.AdGroup, error) {
	return r.query(ctx, `SELECT `+adGroupColumns+` FROM ad_groups WHERE campaign_id=$1 `+byNumeroGrupo, campaignID)
}

func (r *AdGroupRepository) query(ctx context.Context, query string, args ...any) ([]*model.AdGroup, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []*model.AdGroup{}
	for rows.Next() {
		g, err := scanAdGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Delete removes the ad group and, by cascade, its ads.
func (r *AdGroupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ad_groups WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

var _ AdGroupRepositoryInterface = (*AdGroupRepository)(nil)
