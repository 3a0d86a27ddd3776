package api

import (
	"net/http"

	resdto "hall-allocation/internal/handler/dto/response"
	"hall-allocation/internal/handler/httperr"
	"hall-allocation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AllocationHandler struct {
	cmds commands.AllocationCommands
}

func NewAllocationHandler(cmds commands.AllocationCommands) *AllocationHandler {
	return &AllocationHandler{cmds: cmds}
}

// @Summary Approve request
// @Description Allocates the requested hall to the lecturer and marks the request approved
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/requests/{id}/approve [post]
func (h *AllocationHandler) Approve(c *gin.Context) {
	adminID, ok := actorID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Approve(c.Request.Context(), adminID, requestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApproveResult(result))
}

// @Summary Deallocate hall
// @Description Frees the hall and deletes its approved requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Success 200 {object} resdto.DeallocateResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/halls/{id}/deallocate [post]
func (h *AllocationHandler) Deallocate(c *gin.Context) {
	adminID, ok := actorID(c)
	if !ok {
		return
	}
	hallID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Deallocate(c.Request.Context(), adminID, hallID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeallocateResult(result))
}
