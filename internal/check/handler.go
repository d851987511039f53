package check

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/format-check/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CheckHandler struct {
	checkService *CheckService
}

func NewCheckHandler(checkService *CheckService) *CheckHandler {
	return &CheckHandler{
		checkService: checkService,
	}
}

func (h *CheckHandler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkService.ListRules())
}

func (h *CheckHandler) Check(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CheckRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.checkService.Check(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CheckHandler) CheckBatch(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request BatchCheckRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.checkService.CheckBatch(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CheckHandler) History(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.checkService.History(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
