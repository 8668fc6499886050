package controller

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/httpx"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/service"
)

type AdController struct {
	AdService *service.AdService
	Log       *zap.Logger
}

func (c *AdController) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := c.AdService.List(r.Context())
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to fetch ads")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ads)
}

func (c *AdController) ListByAdGroup(w http.ResponseWriter, r *http.Request) {
	adGroupID, err := httpx.ParseID(r, "adGroupId")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad group ID")
		return
	}

	ads, err := c.AdService.ListByAdGroup(r.Context(), adGroupID)
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to fetch ads for ad group")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ads)
}

func (c *AdController) GetAd(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}

	ad, err := c.AdService.Get(r.Context(), id)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Ad not found", "Failed to fetch ad")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ad)
}

func (c *AdController) CreateAd(w http.ResponseWriter, r *http.Request) {
	var body model.AdInput
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ad, err := c.AdService.Create(r.Context(), body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to create ad")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, ad)
}

func (c *AdController) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}

	var body model.AdPatch
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ad, err := c.AdService.Update(r.Context(), id, body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Ad not found", "Failed to update ad")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ad)
}

func (c *AdController) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}

	if err := c.AdService.Delete(r.Context(), id); err != nil {
		httpx.Fail(w, c.Log, err, "Ad not found", "Failed to delete ad")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
