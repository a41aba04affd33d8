package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

type AgentLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAgentLogic(ctx context.Context, core *core.Core) *AgentLogic {
	return &AgentLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateAgentArgs struct {
	Name               string                `json:"name" binding:"required"`
	Category           string                `json:"category"`
	Description        string                `json:"description"`
	PromptTemplate     string                `json:"prompt_template"`
	SystemInstructions string                `json:"system_instructions"`
	Visibility         types.AgentVisibility `json:"visibility"`
	OrganizationID     string                `json:"organization_id"`
	FileIDs            types.StringList      `json:"file_ids"`
}

func (l *AgentLogic) CreateAgent(args CreateAgentArgs) (*types.Agent, error) {
	if args.Visibility == "" {
		args.Visibility = types.AGENT_VISIBILITY_PRIVATE
	}
	if !args.Visibility.Valid() {
		return nil, errors.New("AgentLogic.CreateAgent.visibility", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	// organization 可见必须归属某个组织，且创建者必须是成员
	if args.Visibility == types.AGENT_VISIBILITY_ORGANIZATION {
		if args.OrganizationID == "" {
			return nil, errors.New("AgentLogic.CreateAgent.organization", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
		}
		ok, err := l.isOrganizationMember(l.ctx, args.OrganizationID, l.GetUserInfo().User)
		if err != nil {
			return nil, errors.New("AgentLogic.CreateAgent.isMember", i18n.ERROR_INTERNAL, err)
		}
		if !ok {
			return nil, errors.New("AgentLogic.CreateAgent.member", i18n.ERROR_AGENT_NOT_ORG_MEMBER, nil).Code(http.StatusForbidden)
		}
	}

	now := time.Now().Unix()
	agent := types.Agent{
		ID:                 utils.GenUniqIDStr(),
		Name:               args.Name,
		Category:           args.Category,
		Description:        args.Description,
		PromptTemplate:     args.PromptTemplate,
		SystemInstructions: args.SystemInstructions,
		Visibility:         args.Visibility,
		CreatorID:          l.GetUserInfo().User,
		OrganizationID:     args.OrganizationID,
		FileIDs:            args.FileIDs,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := l.core.Store().AgentStore().Create(l.ctx, agent); err != nil {
		return nil, errors.New("AgentLogic.CreateAgent.Create", i18n.ERROR_INTERNAL, err)
	}
	return &agent, nil
}

type ListAgentsResult struct {
	List  []types.Agent `json:"list"`
	Total int64         `json:"total"`
}

// ListAgents 只返回调用者可见的 agent
func (l *AgentLogic) ListAgents(category string, page, pageSize uint64) (*ListAgentsResult, error) {
	user := l.GetUserInfo().User

	orgIDs, err := l.core.Store().OrganizationMemberStore().ListUserOrganizationIDs(l.ctx, user)
	if err != nil {
		return nil, errors.New("AgentLogic.ListAgents.ListUserOrganizationIDs", i18n.ERROR_INTERNAL, err)
	}

	opts := types.ListAgentOptions{
		Category:        category,
		OrganizationIDs: orgIDs,
		VisibleToUser:   user,
		ActiveOnly:      true,
	}

	list, err := l.core.Store().AgentStore().ListAgents(l.ctx, opts, page, pageSize)
	if err != nil {
		return nil, errors.New("AgentLogic.ListAgents.ListAgents", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().AgentStore().Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("AgentLogic.ListAgents.Total", i18n.ERROR_INTERNAL, err)
	}

	return &ListAgentsResult{List: list, Total: total}, nil
}

// GetAgent 详情查看，顺手记一条 view 流水
func (l *AgentLogic) GetAgent(id string) (*types.Agent, error) {
	agent, err := l.loadAccessibleAgent(id)
	if err != nil {
		return nil, err
	}

	if err := l.core.Store().UsageLogStore().Create(l.ctx, types.UsageLog{
		ID:             utils.GenUniqIDStr(),
		UserID:         l.GetUserInfo().User,
		OrganizationID: agent.OrganizationID,
		ResourceType:   types.RESOURCE_TYPE_AGENT,
		ResourceID:     agent.ID,
		Action:         types.USAGE_ACTION_VIEW,
	}); err != nil {
		l.core.Metrics().RecordFailureInc("usage_log")
		slog.Error("failed to save usage log", slog.String("agent_id", agent.ID), slog.String("error", err.Error()))
	}

	return agent, nil
}

func (l *AgentLogic) UpdateAgent(id string, args types.UpdateAgentArgs) error {
	agent, err := l.loadAgent(id)
	if err != nil {
		return err
	}
	if agent.CreatorID != l.GetUserInfo().User {
		return errors.New("AgentLogic.UpdateAgent.creator", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	if !args.Visibility.Valid() {
		return errors.New("AgentLogic.UpdateAgent.visibility", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if args.Visibility == types.AGENT_VISIBILITY_ORGANIZATION && args.OrganizationID == "" {
		return errors.New("AgentLogic.UpdateAgent.organization", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if err := l.core.Store().AgentStore().Update(l.ctx, id, args); err != nil {
		return errors.New("AgentLogic.UpdateAgent.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// DeactivateAgent 下线而非删除，保留历史互动记录
func (l *AgentLogic) DeactivateAgent(id string) error {
	agent, err := l.loadAgent(id)
	if err != nil {
		return err
	}
	if agent.CreatorID != l.GetUserInfo().User {
		return errors.New("AgentLogic.DeactivateAgent.creator", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}

	if err := l.core.Store().AgentStore().Deactivate(l.ctx, id); err != nil {
		return errors.New("AgentLogic.DeactivateAgent.Deactivate", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *AgentLogic) loadAgent(id string) (*types.Agent, error) {
	agent, err := l.core.Store().AgentStore().GetAgent(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("AgentLogic.loadAgent", i18n.ERROR_AGENT_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("AgentLogic.loadAgent", i18n.ERROR_INTERNAL, err)
	}
	return agent, nil
}

func (l *AgentLogic) loadAccessibleAgent(id string) (*types.Agent, error) {
	agent, err := l.loadAgent(id)
	if err != nil {
		return nil, err
	}
	if !agent.IsActive {
		return nil, errors.New("AgentLogic.loadAccessibleAgent.inactive", i18n.ERROR_AGENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	if err := CheckAgentAccess(l.ctx, agent, l.GetUserInfo().User, l.isOrganizationMember); err != nil {
		return nil, err
	}
	return agent, nil
}

func (l *AgentLogic) isOrganizationMember(ctx context.Context, organizationID, userID string) (bool, error) {
	_, err := l.core.Store().OrganizationMemberStore().GetMember(ctx, organizationID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
