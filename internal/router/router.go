// internal/router/router.go
package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/controller"
	"github.com/unclebandit/campaign-admin/internal/handler"
	"github.com/unclebandit/campaign-admin/internal/middleware"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/service"
)

type Options struct {
	DB     *sql.DB
	Log    *zap.Logger
	Events *service.Publisher
	// Registry receives the HTTP metrics and is served on /metrics.
	Registry *prometheus.Registry
}

// New wires repositories, services and controllers on opts.DB and returns
// the API router.
func New(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	campaignRepo := &repository.CampaignRepository{DB: opts.DB}
	adGroupRepo := &repository.AdGroupRepository{DB: opts.DB}
	adRepo := &repository.AdRepository{DB: opts.DB}
	programRepo := &repository.ProgramRepository{DB: opts.DB}
	hierarchyRepo := &repository.HierarchyRepository{DB: opts.DB}

	v := service.NewValidator()
	campaignService := service.NewCampaignService(campaignRepo, hierarchyRepo, v, opts.Events)
	adGroupService := service.NewAdGroupService(adGroupRepo, campaignRepo, v, opts.Events)
	adService := service.NewAdService(adRepo, adGroupRepo, v, opts.Events)
	programService := service.NewProgramService(programRepo, v, opts.Events)

	campaigns := &controller.CampaignController{CampaignService: campaignService, Log: log}
	adGroups := &controller.AdGroupController{AdGroupService: adGroupService, Log: log}
	ads := &controller.AdController{AdService: adService, Log: log}
	programs := &controller.ProgramController{ProgramService: programService, Log: log}
	views := handler.NewCampaignHandler(campaignService, log)
	health := &handler.HealthHandler{DB: opts.DB}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", health.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", campaigns.ListCampaigns)
			r.Post("/", campaigns.CreateCampaign)
			r.Get("/{id}", campaigns.GetCampaign)
			r.Put("/{id}", campaigns.UpdateCampaign)
			r.Delete("/{id}", campaigns.DeleteCampaign)
			r.Get("/{campaignId}/ad-groups", adGroups.ListByCampaign)
		})

		r.Route("/ad-groups", func(r chi.Router) {
			r.Get("/", adGroups.ListAdGroups)
			r.Post("/", adGroups.CreateAdGroup)
			r.Get("/{id}", adGroups.GetAdGroup)
			r.Put("/{id}", adGroups.UpdateAdGroup)
			r.Delete("/{id}", adGroups.DeleteAdGroup)
			r.Get("/{adGroupId}/ads", ads.ListByAdGroup)
		})

		r.Route("/ads", func(r chi.Router) {
			r.Get("/", ads.ListAds)
			r.Post("/", ads.CreateAd)
			r.Get("/{id}", ads.GetAd)
			r.Put("/{id}", ads.UpdateAd)
			r.Delete("/{id}", ads.DeleteAd)
		})

		r.Route("/programs", func(r chi.Router) {
			r.Get("/", programs.ListPrograms)
			r.Post("/", programs.CreateProgram)
			r.Get("/{id}", programs.GetProgram)
			r.Put("/{id}", programs.UpdateProgram)
			r.Delete("/{id}", programs.DeleteProgram)
		})

		r.Get("/search", views.SearchCampaigns)
		r.Get("/search/export.csv", views.ExportSearchCSV)
		r.Get("/complete", views.CompleteHierarchy)
		r.Get("/complete/export.csv", views.ExportCompleteCSV)
		r.Get("/complete/export.xlsx", views.ExportCompleteXLSX)
	})

	return r
}
