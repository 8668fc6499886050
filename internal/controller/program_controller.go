package controller

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/httpx"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/service"
)

type ProgramController struct {
	ProgramService *service.ProgramService
	Log            *zap.Logger
}

func (c *ProgramController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := c.ProgramService.List(r.Context())
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to fetch programs")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, programs)
}

func (c *ProgramController) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	program, err := c.ProgramService.Get(r.Context(), id)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Program not found", "Failed to fetch program")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, program)
}

func (c *ProgramController) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var body model.ProgramInput
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	program, err := c.ProgramService.Create(r.Context(), body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "", "Failed to create program")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, program)
}

func (c *ProgramController) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	var body model.ProgramPatch
	if err := httpx.Decode(r, &body); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	program, err := c.ProgramService.Update(r.Context(), id, body)
	if err != nil {
		httpx.Fail(w, c.Log, err, "Program not found", "Failed to update program")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, program)
}

func (c *ProgramController) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	if err := c.ProgramService.Delete(r.Context(), id); err != nil {
		httpx.Fail(w, c.Log, err, "Program not found", "Failed to delete program")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
