package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/seriousplay/MegaSpace/app/logic/v1"
	"github.com/seriousplay/MegaSpace/app/response"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

type ChatRequest struct {
	AgentID   string `json:"agentId" form:"agentId" binding:"required"`
	Message   string `json:"message" form:"message" binding:"required"`
	SessionID string `json:"sessionId" form:"sessionId"`
}

func (s *HttpSrv) Chat(c *gin.Context) {
	var req ChatRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewChatLogic(c, s.Core)
	result, err := logic.SendMessage(req.AgentID, req.Message, req.SessionID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}
