package api

import (
	"net/http"

	reqdto "hall-allocation/internal/handler/dto/request"
	resdto "hall-allocation/internal/handler/dto/response"
	"hall-allocation/internal/handler/httperr"
	"hall-allocation/internal/usecase/commands"
	"hall-allocation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HallHandler struct {
	cmds commands.HallCommands
	q    queries.HallQueries
}

func NewHallHandler(cmds commands.HallCommands, q queries.HallQueries) *HallHandler {
	return &HallHandler{cmds: cmds, q: q}
}

// @Summary List halls
// @Description List halls ordered by name, optionally filtered by status
// @Tags halls
// @Produce json
// @Security BearerAuth
// @Param status query string false "available or allocated"
// @Success 200 {array} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Router /api/halls [get]
func (h *HallHandler) List(c *gin.Context) {
	var query reqdto.HallListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), query.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHallViews(views)
	writeConverted(c, http.StatusOK, resp, err)
}

// @Summary Get hall
// @Tags halls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Success 200 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/halls/{id} [get]
func (h *HallHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHallView(view)
	writeConverted(c, http.StatusOK, resp, err)
}

// @Summary Create hall
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHallRequest true "Create hall request"
// @Success 201 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/halls [post]
func (h *HallHandler) Create(c *gin.Context) {
	adminID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), adminID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithHall(c, http.StatusCreated, id)
}

// @Summary Update hall
// @Description Partial update of name, location and capacity
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param request body reqdto.UpdateHallRequest true "Update hall request"
// @Success 200 {object} resdto.HallResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/halls/{id} [patch]
func (h *HallHandler) Update(c *gin.Context) {
	adminID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), adminID, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithHall(c, http.StatusOK, id)
}

// @Summary Delete hall
// @Description Removes the hall. Requests referencing it are kept.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/halls/{id} [delete]
func (h *HallHandler) Delete(c *gin.Context) {
	adminID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), adminID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List my halls
// @Description Halls currently allocated to the calling lecturer
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HallResponse
// @Router /api/lecturer/halls [get]
func (h *HallHandler) ListMine(c *gin.Context) {
	lecturerID, ok := actorID(c)
	if !ok {
		return
	}

	views, err := h.q.ListAllocatedTo(c.Request.Context(), lecturerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHallViews(views)
	writeConverted(c, http.StatusOK, resp, err)
}

func (h *HallHandler) respondWithHall(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHallView(view)
	writeConverted(c, status, resp, err)
}
