package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/seriousplay/MegaSpace/app/logic/v1"
	"github.com/seriousplay/MegaSpace/app/response"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
)

func (s *HttpSrv) GetFileUpload(c *gin.Context) {
	fileID, exist := c.Params.Get("file")
	if !exist || fileID == "" {
		response.APIError(c, errors.New("api.GetFileUpload", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	logic := v1.NewFileLogic(c, s.Core)
	file, err := logic.GetFileUpload(fileID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, file)
}
