package v1

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

type FileLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewFileLogic(ctx context.Context, core *core.Core) *FileLogic {
	return &FileLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// GetFileUpload 只允许上传者本人查看文件元数据
func (l *FileLogic) GetFileUpload(id string) (*types.FileUpload, error) {
	file, err := l.core.Store().FileUploadStore().GetFileUpload(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("FileLogic.GetFileUpload", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("FileLogic.GetFileUpload", i18n.ERROR_INTERNAL, err)
	}
	if file.UploaderID != l.GetUserInfo().User {
		return nil, errors.New("FileLogic.GetFileUpload.uploader", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return file, nil
}
