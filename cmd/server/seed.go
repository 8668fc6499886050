package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/config"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/service"
)

// seed loads the demo hierarchy and the program catalogue into an empty
// database.
func seed(ctx context.Context, cfg config.Config, conn *sql.DB, log *zap.Logger) error {
	seeder := &service.Seeder{
		CampaignRepo: &repository.CampaignRepository{DB: conn},
		AdGroupRepo:  &repository.AdGroupRepository{DB: conn},
		AdRepo:       &repository.AdRepository{DB: conn},
		Log:          log,
	}
	if _, err := seeder.SeedSampleData(ctx); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	importer := &service.ProgramImporter{ProgramRepo: &repository.ProgramRepository{DB: conn}, Log: log}
	if _, _, err := importer.ImportFile(ctx, cfg.ProgramsCSV); err != nil {
		return fmt.Errorf("import programs: %w", err)
	}
	return nil
}
