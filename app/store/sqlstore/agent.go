package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/seriousplay/MegaSpace/pkg/register"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.AgentStore = NewAgentStore(provider)
	})
}

type AgentStore struct {
	CommonFields
}

func NewAgentStore(provider SqlProviderAchieve) *AgentStore {
	repo := &AgentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_AGENT)
	repo.SetAllColumns("id", "name", "category", "description", "prompt_template", "system_instructions",
		"visibility", "creator_id", "organization_id", "file_ids", "usage_count", "is_active", "created_at", "updated_at")
	return repo
}

func (s *AgentStore) Create(ctx context.Context, data types.Agent) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "category", "description", "prompt_template", "system_instructions",
			"visibility", "creator_id", "organization_id", "file_ids", "usage_count", "is_active", "created_at", "updated_at").
		Values(data.ID, data.Name, data.Category, data.Description, data.PromptTemplate, data.SystemInstructions,
			data.Visibility, data.CreatorID, data.OrganizationID, data.FileIDs, data.UsageCount, data.IsActive, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

func (s *AgentStore) GetAgent(ctx context.Context, id string) (*types.Agent, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var agent types.Agent
	if err := s.GetReplica(ctx).Get(&agent, queryString, args...); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *AgentStore) Update(ctx context.Context, id string, data types.UpdateAgentArgs) error {
	query := sq.Update(s.GetTable()).
		Set("name", data.Name).
		Set("category", data.Category).
		Set("description", data.Description).
		Set("prompt_template", data.PromptTemplate).
		Set("system_instructions", data.SystemInstructions).
		Set("visibility", data.Visibility).
		Set("organization_id", data.OrganizationID).
		Set("file_ids", data.FileIDs).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}
	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

func (s *AgentStore) Deactivate(ctx context.Context, id string) error {
	query := sq.Update(s.GetTable()).
		Set("is_active", false).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}
	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

func (s *AgentStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}
	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// IncrUsageCount 计数自增在数据库侧完成，避免读改写竞争
func (s *AgentStore) IncrUsageCount(ctx context.Context, id string) error {
	query := sq.Update(s.GetTable()).
		Set("usage_count", sq.Expr("usage_count + 1")).
		Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}
	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

func listAgentConds(opts types.ListAgentOptions) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if opts.Category != "" {
		conds = append(conds, sq.Eq{"category": opts.Category})
	}
	if opts.CreatorID != "" {
		conds = append(conds, sq.Eq{"creator_id": opts.CreatorID})
	}
	if opts.ActiveOnly {
		conds = append(conds, sq.Eq{"is_active": true})
	}
	if opts.VisibleToUser != "" {
		visible := sq.Or{
			sq.Eq{"visibility": types.AGENT_VISIBILITY_PUBLIC},
			sq.Eq{"creator_id": opts.VisibleToUser},
		}
		if len(opts.OrganizationIDs) > 0 {
			visible = append(visible, sq.And{
				sq.Eq{"visibility": types.AGENT_VISIBILITY_ORGANIZATION},
				sq.Eq{"organization_id": opts.OrganizationIDs},
			})
		}
		conds = append(conds, visible)
	}
	return conds
}

func (s *AgentStore) ListAgents(ctx context.Context, opts types.ListAgentOptions, page, pageSize uint64) ([]types.Agent, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable())
	for _, cond := range listAgentConds(opts) {
		query = query.Where(cond)
	}
	query = query.OrderBy("created_at DESC")
	if page != types.NO_PAGING && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var agents []types.Agent
	if err := s.GetReplica(ctx).Select(&agents, queryString, args...); err != nil {
		return nil, err
	}
	return agents, nil
}

func (s *AgentStore) Total(ctx context.Context, opts types.ListAgentOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())
	for _, cond := range listAgentConds(opts) {
		query = query.Where(cond)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err := s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
