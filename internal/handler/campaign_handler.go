// internal/handler/campaign_handler.go
package handler

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/export"
	"github.com/unclebandit/campaign-admin/internal/httpx"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/service"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// CampaignHandler serves the read-composed views: search, the complete
// hierarchy and their file exports.
type CampaignHandler struct {
	Service *service.CampaignService
	Log     *zap.Logger
	// Now dates export file names; defaults to time.Now.
	Now func() time.Time
}

func NewCampaignHandler(svc *service.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{Service: svc, Log: log, Now: time.Now}
}

// filterFromQuery reads the search filters; empty parameters are unset.
func filterFromQuery(r *http.Request) model.SearchFilter {
	q := r.URL.Query()
	return model.SearchFilter{
		NombreCampania:  q.Get("nombre_campania"),
		Medio:           q.Get("medio"),
		ProgramaInteres: q.Get("programa_interes"),
		Facultad:        q.Get("facultad"),
		TipoCampana:     q.Get("tipo_campana"),
	}
}

func (h *CampaignHandler) SearchCampaigns(w http.ResponseWriter, r *http.Request) {
	results, err := h.Service.Search(r.Context(), filterFromQuery(r))
	if err != nil {
		httpx.Fail(w, h.Log, err, "", "Failed to search campaigns")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, results)
}

func (h *CampaignHandler) CompleteHierarchy(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Service.CompleteHierarchy(r.Context())
	if err != nil {
		httpx.Fail(w, h.Log, err, "", "Failed to fetch complete hierarchy")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"campaigns": tree})
}

func (h *CampaignHandler) ExportCompleteCSV(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Service.CompleteHierarchy(r.Context())
	if err != nil {
		httpx.Fail(w, h.Log, err, "", "Failed to export complete hierarchy")
		return
	}
	h.attach(w, csvContentType, "vista-completa", "csv",
		export.FormatCSV(export.FlattenHierarchy(tree)))
}

func (h *CampaignHandler) ExportSearchCSV(w http.ResponseWriter, r *http.Request) {
	results, err := h.Service.Search(r.Context(), filterFromQuery(r))
	if err != nil {
		httpx.Fail(w, h.Log, err, "", "Failed to export search results")
		return
	}
	h.attach(w, csvContentType, "resultados-busqueda", "csv",
		export.FormatCSV(export.SearchResultRows(results)))
}

func (h *CampaignHandler) ExportCompleteXLSX(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Service.CompleteHierarchy(r.Context())
	if err != nil {
		httpx.Fail(w, h.Log, err, "", "Failed to export complete hierarchy")
		return
	}
	data, err := export.WriteXLSX(export.HierarchySheet, export.FlattenHierarchy(tree))
	if err != nil {
		httpx.Fail(w, h.Log, err, "", "Failed to export complete hierarchy")
		return
	}
	h.attach(w, xlsxContentType, "vista-completa", "xlsx", data)
}

func (h *CampaignHandler) attach(w http.ResponseWriter, contentType, base, ext string, data []byte) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	name := fmt.Sprintf("%s-%s.%s", base, now().Format("2006-01-02"), ext)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil && h.Log != nil {
		h.Log.Warn("write export", zap.String("file", name), zap.Error(err))
	}
}
