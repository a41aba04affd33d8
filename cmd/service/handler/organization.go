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

func (s *HttpSrv) ListUserOrganizations(c *gin.Context) {
	logic := v1.NewOrganizationLogic(c, s.Core)
	list, err := logic.ListUserOrganizations()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

type ListOrganizationMembersRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	PageSize uint64 `json:"pagesize" form:"pagesize" binding:"required"`
}

func (s *HttpSrv) ListOrganizationMembers(c *gin.Context) {
	organizationID, exist := c.Params.Get("organization")
	if !exist || organizationID == "" {
		response.APIError(c, errors.New("api.ListOrganizationMembers", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	var req ListOrganizationMembersRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewOrganizationLogic(c, s.Core)
	list, err := logic.ListMembers(organizationID, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}
