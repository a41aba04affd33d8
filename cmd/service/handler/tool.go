package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/seriousplay/MegaSpace/app/logic/v1"
	"github.com/seriousplay/MegaSpace/app/response"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

type ListPublicToolsRequest struct {
	Category string `json:"category" form:"category"`
	Page     uint64 `json:"page" form:"page" binding:"required"`
	PageSize uint64 `json:"pagesize" form:"pagesize" binding:"required"`
}

func (s *HttpSrv) ListPublicTools(c *gin.Context) {
	var req ListPublicToolsRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewToolLogic(c, s.Core)
	list, err := logic.ListPublicTools(req.Category, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

func (s *HttpSrv) UsePublicTool(c *gin.Context) {
	toolID, exist := c.Params.Get("tool")
	if !exist || toolID == "" {
		response.APIError(c, errors.New("api.UsePublicTool", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	logic := v1.NewToolLogic(c, s.Core)
	tool, err := logic.UsePublicTool(toolID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, tool)
}
