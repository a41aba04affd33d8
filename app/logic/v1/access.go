package v1

import (
	"context"
	"net/http"

	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

// MemberChecker 判断用户是否为某组织成员
type MemberChecker func(ctx context.Context, organizationID, userID string) (bool, error)

// CheckAgentAccess 按可见性策略裁决用户能否使用 agent。
// organization 可见但未挂组织的 agent 一律拒绝，宁可错杀。
func CheckAgentAccess(ctx context.Context, agent *types.Agent, userID string, isMember MemberChecker) error {
	switch agent.Visibility {
	case types.AGENT_VISIBILITY_PUBLIC:
		return nil
	case types.AGENT_VISIBILITY_PRIVATE:
		if agent.CreatorID == userID {
			return nil
		}
		return errors.New("CheckAgentAccess.private", i18n.ERROR_AGENT_PRIVATE, nil).Code(http.StatusForbidden)
	case types.AGENT_VISIBILITY_ORGANIZATION:
		if agent.CreatorID == userID {
			return nil
		}
		if agent.OrganizationID == "" {
			return errors.New("CheckAgentAccess.orphan", i18n.ERROR_AGENT_ORPHAN_ORG, nil).Code(http.StatusForbidden)
		}
		ok, err := isMember(ctx, agent.OrganizationID, userID)
		if err != nil {
			return errors.New("CheckAgentAccess.isMember", i18n.ERROR_INTERNAL, err)
		}
		if !ok {
			return errors.New("CheckAgentAccess.member", i18n.ERROR_AGENT_NOT_ORG_MEMBER, nil).Code(http.StatusForbidden)
		}
		return nil
	default:
		return errors.New("CheckAgentAccess.visibility", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
}
