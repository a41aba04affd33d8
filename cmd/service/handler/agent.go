package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/seriousplay/MegaSpace/app/logic/v1"
	"github.com/seriousplay/MegaSpace/app/response"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

func (s *HttpSrv) CreateAgent(c *gin.Context) {
	var req v1.CreateAgentArgs
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewAgentLogic(c, s.Core)
	agent, err := logic.CreateAgent(req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, agent)
}

type ListAgentsRequest struct {
	Category string `json:"category" form:"category"`
	Page     uint64 `json:"page" form:"page" binding:"required"`
	PageSize uint64 `json:"pagesize" form:"pagesize" binding:"required"`
}

func (s *HttpSrv) ListAgents(c *gin.Context) {
	var req ListAgentsRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewAgentLogic(c, s.Core)
	result, err := logic.ListAgents(req.Category, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

func (s *HttpSrv) GetAgent(c *gin.Context) {
	agentID, exist := c.Params.Get("agent")
	if !exist || agentID == "" {
		response.APIError(c, errors.New("api.GetAgent", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	logic := v1.NewAgentLogic(c, s.Core)
	agent, err := logic.GetAgent(agentID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, agent)
}

func (s *HttpSrv) UpdateAgent(c *gin.Context) {
	agentID, exist := c.Params.Get("agent")
	if !exist || agentID == "" {
		response.APIError(c, errors.New("api.UpdateAgent", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	var req types.UpdateAgentArgs
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewAgentLogic(c, s.Core)
	if err := logic.UpdateAgent(agentID, req); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, response.EmptyStruct{})
}

func (s *HttpSrv) DeactivateAgent(c *gin.Context) {
	agentID, exist := c.Params.Get("agent")
	if !exist || agentID == "" {
		response.APIError(c, errors.New("api.DeactivateAgent", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	logic := v1.NewAgentLogic(c, s.Core)
	if err := logic.DeactivateAgent(agentID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, response.EmptyStruct{})
}
