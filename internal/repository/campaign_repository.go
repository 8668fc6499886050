package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
)

type CampaignRepositoryInterface interface {
	List(ctx context.Context) ([]*model.Campaign, error)
	GetByID(ctx context.Context, id int64) (*model.Campaign, error)
	Create(ctx context.Context, c *model.Campaign) error
	Update(ctx context.Context, c *model.Campaign) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)

	Search(ctx context.Context, filter model.SearchFilter) ([]model.CampaignSearchResult, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, medio, programa_interes, tipo_campana, nomenclatura_programa,
	modalidad_estudio, linea, facultad, nomenclatura_modalidad, nomenclatura_linea,
	nomenclatura_tipo_campana, nomenclatura_modalidad3, nombre_sf, url_programa,
	lista_pardot, nombre_campania, created_at, updated_at`

func scanCampaign(s rowScanner) (*model.Campaign, error) {
	var c model.Campaign
	err := s.Scan(
		&c.ID, &c.Medio, &c.ProgramaInteres, &c.TipoCampana, &c.NomenclaturaPrograma,
		&c.ModalidadEstudio, &c.Linea, &c.Facultad, &c.NomenclaturaModalidad, &c.NomenclaturaLinea,
		&c.NomenclaturaTipoCampana, &c.NomenclaturaModalidad3, &c.NombreSF, &c.URLPrograma,
		&c.ListaPardot, &c.NombreCampania, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	query := `
		INSERT INTO campaigns (
			medio, programa_interes, tipo_campana, nomenclatura_programa, modalidad_estudio,
			linea, facultad, nomenclatura_modalidad, nomenclatura_linea, nomenclatura_tipo_campana,
			nomenclatura_modalidad3, nombre_sf, url_programa, lista_pardot, nombre_campania,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Medio, c.ProgramaInteres, c.TipoCampana, c.NomenclaturaPrograma, c.ModalidadEstudio,
		c.Linea, c.Facultad, c.NomenclaturaModalidad, c.NomenclaturaLinea, c.NomenclaturaTipoCampana,
		c.NomenclaturaModalidad3, c.NombreSF, c.URLPrograma, c.ListaPardot, c.NombreCampania,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

// Update writes every column of c and refreshes updated_at.
func (r *CampaignRepository) Update(ctx context.Context, c *model.Campaign) error {
	c.UpdatedAt = now()
	query := `
		UPDATE campaigns
		SET medio=$1, programa_interes=$2, tipo_campana=$3, nomenclatura_programa=$4,
			modalidad_estudio=$5, linea=$6, facultad=$7, nomenclatura_modalidad=$8,
			nomenclatura_linea=$9, nomenclatura_tipo_campana=$10, nomenclatura_modalidad3=$11,
			nombre_sf=$12, url_programa=$13, lista_pardot=$14, nombre_campania=$15, updated_at=$16
		WHERE id=$17
	`
	res, err := r.DB.ExecContext(ctx, query,
		c.Medio, c.ProgramaInteres, c.TipoCampana, c.NomenclaturaPrograma,
		c.ModalidadEstudio, c.Linea, c.Facultad, c.NomenclaturaModalidad,
		c.NomenclaturaLinea, c.NomenclaturaTipoCampana, c.NomenclaturaModalidad3,
		c.NombreSF, c.URLPrograma, c.ListaPardot, c.NombreCampania, c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return err
	}
	if ok, err := affected(res); err != nil {
		return err
	} else if !ok {
		return appErrors.NewNotFound(model.EntityCampaign, c.ID)
	}
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound(model.EntityCampaign, id)
		}
		return nil, err
	}
	return c, nil
}

// List returns every campaign, newest first.
func (r *CampaignRepository) List(ctx context.Context) ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Delete removes the campaign; its ad groups and their ads go with it
// through ON DELETE CASCADE.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *CampaignRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&n)
	return n, err
}

// ====================== Search ======================

// Search filters the base listing with filter and attaches ad group and ad
// counts. Filtering happens in Go so substring matching folds case the
// same way on every engine and user input is never treated as a LIKE
// pattern.
func (r *CampaignRepository) Search(ctx context.Context, filter model.SearchFilter) ([]model.CampaignSearchResult, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	matched := make([]*model.Campaign, 0, len(all))
	for _, c := range all {
		if filter.Matches(c) {
			matched = append(matched, c)
		}
	}

	counts, err := r.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ad groups: %w", err)
	}
	return model.WithCounts(matched, counts), nil
}

// Counts returns, per campaign that owns at least one ad group, the number
// of ad groups and the number of ads across them.
func (r *CampaignRepository) Counts(ctx context.Context) (map[int64]model.CampaignCounts, error) {
	query := `
		SELECT g.campaign_id, COUNT(DISTINCT g.id), COUNT(a.id)
		FROM ad_groups g
		LEFT JOIN ads a ON a.ad_group_id = g.id
		GROUP BY g.campaign_id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int64]model.CampaignCounts{}
	for rows.Next() {
		var id int64
		var n model.CampaignCounts
		if err := rows.Scan(&id, &n.Groups, &n.Ads); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
