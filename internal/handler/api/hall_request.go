package api

import (
	"net/http"

	reqdto "hall-allocation/internal/handler/dto/request"
	resdto "hall-allocation/internal/handler/dto/response"
	"hall-allocation/internal/handler/httperr"
	"hall-allocation/internal/usecase/commands"
	"hall-allocation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HallRequestHandler struct {
	cmds commands.HallRequestCommands
	q    queries.HallRequestQueries
}

func NewHallRequestHandler(cmds commands.HallRequestCommands, q queries.HallRequestQueries) *HallRequestHandler {
	return &HallRequestHandler{cmds: cmds, q: q}
}

// @Summary Request a hall
// @Description Files a pending request for the hall. Availability is checked on approval.
// @Tags lecturer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param request body reqdto.CreateHallRequestRequest true "Exam details"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/lecturer/halls/{id}/requests [post]
func (h *HallRequestHandler) Create(c *gin.Context) {
	lecturerID, ok := actorID(c)
	if !ok {
		return
	}
	hallID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateHallRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), lecturerID, req.ToInput(hallID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List my requests
// @Description The caller's requests, newest first. Without status every request is returned.
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} resdto.HallRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /api/lecturer/requests [get]
func (h *HallRequestHandler) ListMine(c *gin.Context) {
	lecturerID, ok := actorID(c)
	if !ok {
		return
	}
	var query reqdto.HallRequestListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, err)
		return
	}

	views, err := h.q.ListByLecturer(c.Request.Context(), lecturerID, query.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHallRequestViews(views)
	writeConverted(c, http.StatusOK, resp, err)
}

// @Summary Cancel request
// @Description Deletes one of the caller's own requests in any status
// @Tags lecturer
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/lecturer/requests/{id} [delete]
func (h *HallRequestHandler) Cancel(c *gin.Context) {
	lecturerID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), lecturerID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List pending requests
// @Description Pending requests newest first with hall and lecturer details
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HallRequestResponse
// @Router /api/admin/requests [get]
func (h *HallRequestHandler) ListPending(c *gin.Context) {
	views, err := h.q.ListPending(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHallRequestViews(views)
	writeConverted(c, http.StatusOK, resp, err)
}
