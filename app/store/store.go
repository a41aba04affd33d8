package store

import (
	"context"

	"github.com/seriousplay/MegaSpace/pkg/sqlstore"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

// AgentStore 定义 Agent 数据层的方法集合
type AgentStore interface {
	sqlstore.SqlCommons
	// Create 创建新的 agent 记录
	Create(ctx context.Context, data types.Agent) error
	// GetAgent 根据ID获取 agent 记录
	GetAgent(ctx context.Context, id string) (*types.Agent, error)
	// Update 更新 agent 记录
	Update(ctx context.Context, id string, data types.UpdateAgentArgs) error
	// Deactivate 下线 agent，保留历史数据
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// IncrUsageCount 使用计数自增，数据库侧原子执行
	IncrUsageCount(ctx context.Context, id string) error
	// ListAgents 分页获取 agent 列表
	ListAgents(ctx context.Context, opts types.ListAgentOptions, page, pageSize uint64) ([]types.Agent, error)
	Total(ctx context.Context, opts types.ListAgentOptions) (int64, error)
}

// InteractionStore 定义会话交互记录的方法集合
type InteractionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Interaction) error
	// ListSessionInteractions 按时间正序返回会话内最近的交互记录
	ListSessionInteractions(ctx context.Context, sessionID string, limit uint64) ([]types.Interaction, error)
	ListUserInteractions(ctx context.Context, userID, agentID string, page, pageSize uint64) ([]types.Interaction, error)
	TotalSessionInteractions(ctx context.Context, sessionID string) (int64, error)
}

type OrganizationStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Organization) error
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context, ids []string) ([]types.Organization, error)
}

type OrganizationMemberStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.OrganizationMember) error
	GetMember(ctx context.Context, organizationID, userID string) (*types.OrganizationMember, error)
	// ListUserOrganizationIDs 获取用户加入的全部组织ID
	ListUserOrganizationIDs(ctx context.Context, userID string) ([]string, error)
	ListMembers(ctx context.Context, organizationID string, page, pageSize uint64) ([]types.OrganizationMember, error)
	Delete(ctx context.Context, organizationID, userID string) error
}

type FileUploadStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.FileUpload) error
	GetFileUpload(ctx context.Context, id string) (*types.FileUpload, error)
	// ListFileUploads 批量拉取文件，供 prompt 组装使用
	ListFileUploads(ctx context.Context, ids []string) ([]types.FileUpload, error)
}

type PublicToolStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.PublicTool) error
	GetPublicTool(ctx context.Context, id string) (*types.PublicTool, error)
	IncrUsageCount(ctx context.Context, id string) error
	ListPublicTools(ctx context.Context, opts types.ListPublicToolOptions, page, pageSize uint64) ([]types.PublicTool, error)
}

type UsageLogStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.UsageLog) error
	ListUserUsageLogs(ctx context.Context, userID string, page, pageSize uint64) ([]types.UsageLog, error)
	Total(ctx context.Context, userID string) (int64, error)
}
