package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

type ToolLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewToolLogic(ctx context.Context, core *core.Core) *ToolLogic {
	return &ToolLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// ListPublicTools 公共工具目录对所有登录用户可见
func (l *ToolLogic) ListPublicTools(category string, page, pageSize uint64) ([]types.PublicTool, error) {
	list, err := l.core.Store().PublicToolStore().ListPublicTools(l.ctx, types.ListPublicToolOptions{
		Category:   category,
		ActiveOnly: true,
	}, page, pageSize)
	if err != nil {
		return nil, errors.New("ToolLogic.ListPublicTools", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

// UsePublicTool 记录一次工具使用并返回跳转地址
func (l *ToolLogic) UsePublicTool(id string) (*types.PublicTool, error) {
	tool, err := l.core.Store().PublicToolStore().GetPublicTool(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ToolLogic.UsePublicTool.GetPublicTool", i18n.ERROR_PUBLIC_TOOL_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("ToolLogic.UsePublicTool.GetPublicTool", i18n.ERROR_INTERNAL, err)
	}
	if !tool.IsActive {
		return nil, errors.New("ToolLogic.UsePublicTool.inactive", i18n.ERROR_PUBLIC_TOOL_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err := l.core.Store().PublicToolStore().IncrUsageCount(l.ctx, tool.ID); err != nil {
		l.core.Metrics().RecordFailureInc("usage_count")
		slog.Error("failed to increase tool usage count", slog.String("tool_id", tool.ID), slog.String("error", err.Error()))
	}

	if err := l.core.Store().UsageLogStore().Create(l.ctx, types.UsageLog{
		ID:           utils.GenUniqIDStr(),
		UserID:       l.GetUserInfo().User,
		ResourceType: types.RESOURCE_TYPE_PUBLIC_TOOL,
		ResourceID:   tool.ID,
		Action:       types.USAGE_ACTION_USE,
	}); err != nil {
		l.core.Metrics().RecordFailureInc("usage_log")
		slog.Error("failed to save usage log", slog.String("tool_id", tool.ID), slog.String("error", err.Error()))
	}

	return tool, nil
}
