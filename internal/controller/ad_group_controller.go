package controller

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/httpx"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/service"
)

type AdGroupController struct {
	AdGroupService *service.AdGroupService
	Log            *zap.Logger
}

func (c *AdGroupController) ListAdGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := c.AdGroupService.List(r.Context())
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to fetch ad groups")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, groups)
}

// ListByCampaign serves /campaigns/{campaignId}/ad-groups.
func (c *AdGroupController) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := httpx.ParseID(r, "campaignId")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	groups, err := c.AdGroupService.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to fetch ad groups for campaign")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, groups)
}

func (c *AdGroupController) GetAdGroup(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad group ID")
		return
	}

	group, err := c.AdGroupService.Get(r.Context(), id)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Ad group not found", "Failed to fetch ad group")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, group)
}

func (c *AdGroupController) CreateAdGroup(w http.ResponseWriter, r *http.Request) {
	var body model.AdGroupInput
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := c.AdGroupService.Create(r.Context(), body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to create ad group")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, group)
}

func (c *AdGroupController) UpdateAdGroup(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad group ID")
		return
	}

	var body model.AdGroupPatch
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := c.AdGroupService.Update(r.Context(), id, body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Ad group not found", "Failed to update ad group")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, group)
}

func (c *AdGroupController) DeleteAdGroup(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid ad group ID")
		return
	}

	if err := c.AdGroupService.Delete(r.Context(), id); err != nil {
		httpx.Fail(w, c.Log, err, "Ad group not found", "Failed to delete ad group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
