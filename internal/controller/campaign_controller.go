// internal/controller/campaign_controller.go
package controller

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/httpx"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
	Log             *zap.Logger
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.CampaignService.List(r.Context())
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to fetch campaigns")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, campaigns)
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	campaign, err := c.CampaignService.Get(r.Context(), id)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Campaign not found", "Failed to fetch campaign")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body model.CampaignInput
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := c.CampaignService.Create(r.Context(), body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to create campaign")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	var body model.CampaignPatch
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := c.CampaignService.Update(r.Context(), id, body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Campaign not found", "Failed to update campaign")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign also removes the campaign's ad groups and ads.
func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	if err := c.CampaignService.Delete(r.Context(), id); err != nil {
		httpx.Fail(w, c.Log, err, "Campaign not found", "Failed to delete campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
