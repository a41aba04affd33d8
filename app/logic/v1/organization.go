package v1

import (
	"context"
	"net/http"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

type OrganizationLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewOrganizationLogic(ctx context.Context, core *core.Core) *OrganizationLogic {
	return &OrganizationLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// ListUserOrganizations 返回调用者加入的全部组织
func (l *OrganizationLogic) ListUserOrganizations() ([]types.Organization, error) {
	ids, err := l.core.Store().OrganizationMemberStore().ListUserOrganizationIDs(l.ctx, l.GetUserInfo().User)
	if err != nil {
		return nil, errors.New("OrganizationLogic.ListUserOrganizations.ids", i18n.ERROR_INTERNAL, err)
	}
	if len(ids) == 0 {
		return []types.Organization{}, nil
	}

	list, err := l.core.Store().OrganizationStore().ListOrganizations(l.ctx, ids)
	if err != nil {
		return nil, errors.New("OrganizationLogic.ListUserOrganizations.list", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

// ListMembers 查看组织成员，要求调用者本身是成员
func (l *OrganizationLogic) ListMembers(organizationID string, page, pageSize uint64) ([]types.OrganizationMember, error) {
	if _, err := l.core.Store().OrganizationMemberStore().GetMember(l.ctx, organizationID, l.GetUserInfo().User); err != nil {
		return nil, errors.New("OrganizationLogic.ListMembers.GetMember", i18n.ERROR_PERMISSION_DENIED, err).Code(http.StatusForbidden)
	}

	list, err := l.core.Store().OrganizationMemberStore().ListMembers(l.ctx, organizationID, page, pageSize)
	if err != nil {
		return nil, errors.New("OrganizationLogic.ListMembers.ListMembers", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}
