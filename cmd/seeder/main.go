// cmd/seeder/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/config"
	"github.com/unclebandit/campaign-admin/internal/db"
	"github.com/unclebandit/campaign-admin/internal/export"
	"github.com/unclebandit/campaign-admin/internal/logger"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runtime is what every subcommand needs once the root has loaded config.
type runtime struct {
	cfg  config.Config
	log  *zap.Logger
	conn *sql.DB
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:          "seeder",
		Short:        "Seed, import and export campaign admin data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.IsProduction())
			if err != nil {
				return err
			}
			conn, err := db.Open(cfg.DB)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			rt.cfg, rt.log, rt.conn = cfg, log, conn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = rt.log.Sync()
			return rt.conn.Close()
		},
	}

	root.AddCommand(
		newSeedCmd(rt),
		newImportProgramsCmd(rt),
		newExportCmd(rt),
	)
	return root
}

func newSeedCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample campaigns when the database has none",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &service.Seeder{
				CampaignRepo: &repository.CampaignRepository{DB: rt.conn},
				AdGroupRepo:  &repository.AdGroupRepository{DB: rt.conn},
				AdRepo:       &repository.AdRepository{DB: rt.conn},
				Log:          rt.log,
			}
			res, err := s.SeedSampleData(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d campaigns, %d ad groups, %d ads\n",
				res.Campaigns, res.AdGroups, res.Ads)
			return nil
		},
	}
}

func newImportProgramsCmd(rt *runtime) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import-programs",
		Short: "Load the program catalogue from a ';'-separated file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = rt.cfg.ProgramsCSV
			}
			imp := &service.ProgramImporter{ProgramRepo: &repository.ProgramRepository{DB: rt.conn}, Log: rt.log}
			res, ok, err := imp.ImportFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case !ok:
				return fmt.Errorf("programs file %s not found", file)
			case res.AlreadyLoaded:
				fmt.Fprintln(out, "programs table already has data, nothing imported")
			default:
				fmt.Fprintf(out, "imported %d programs, skipped %d lines\n", res.Imported, res.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "programs file (default PROGRAMS_CSV)")
	return cmd
}

func newExportCmd(rt *runtime) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the complete hierarchy to a .csv or .xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("vista-completa-%s.csv", time.Now().Format("2006-01-02"))
			}
			data, err := renderHierarchy(cmd.Context(), rt.conn, out)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file; .xlsx selects a workbook (default vista-completa-<date>.csv)")
	return cmd
}

func renderHierarchy(ctx context.Context, conn *sql.DB, out string) ([]byte, error) {
	tree, err := (&repository.HierarchyRepository{DB: conn}).CompleteHierarchy(ctx)
	if err != nil {
		return nil, err
	}
	rows := export.FlattenHierarchy(tree)
	if strings.EqualFold(filepath.Ext(out), ".xlsx") {
		return export.WriteXLSX(export.HierarchySheet, rows)
	}
	return export.FormatCSV(rows), nil
}
