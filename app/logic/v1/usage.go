package v1

import (
	"context"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

type UsageLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewUsageLogic(ctx context.Context, core *core.Core) *UsageLogic {
	return &UsageLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type ListUsageLogsResult struct {
	List  []types.UsageLog `json:"list"`
	Total int64            `json:"total"`
}

// ListMyUsageLogs 查看自己的使用流水
func (l *UsageLogic) ListMyUsageLogs(page, pageSize uint64) (*ListUsageLogsResult, error) {
	user := l.GetUserInfo().User

	list, err := l.core.Store().UsageLogStore().ListUserUsageLogs(l.ctx, user, page, pageSize)
	if err != nil {
		return nil, errors.New("UsageLogic.ListMyUsageLogs.list", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().UsageLogStore().Total(l.ctx, user)
	if err != nil {
		return nil, errors.New("UsageLogic.ListMyUsageLogs.total", i18n.ERROR_INTERNAL, err)
	}

	return &ListUsageLogsResult{List: list, Total: total}, nil
}
