package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/seriousplay/MegaSpace/pkg/register"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.InteractionStore = NewInteractionStore(provider)
	})
}

type InteractionStore struct {
	CommonFields
}

func NewInteractionStore(provider SqlProviderAchieve) *InteractionStore {
	repo := &InteractionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_INTERACTION)
	repo.SetAllColumns("id", "user_id", "agent_id", "organization_id", "session_id", "role", "content", "response_time", "created_at")
	return repo
}

func (s *InteractionStore) Create(ctx context.Context, data types.Interaction) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "agent_id", "organization_id", "session_id", "role", "content", "response_time", "created_at").
		Values(data.ID, data.UserID, data.AgentID, data.OrganizationID, data.SessionID, data.Role, data.Content, data.ResponseTime, data.CreatedAt)

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

// ListSessionInteractions 取会话内最近 limit 条，返回时按时间正序排列
func (s *InteractionStore) ListSessionInteractions(ctx context.Context, sessionID string, limit uint64) ([]types.Interaction, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.Interaction
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}

	return lo.Reverse(list), nil
}

func (s *InteractionStore) ListUserInteractions(ctx context.Context, userID, agentID string, page, pageSize uint64) ([]types.Interaction, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID})
	if agentID != "" {
		query = query.Where(sq.Eq{"agent_id": agentID})
	}
	query = query.OrderBy("created_at DESC", "id DESC")
	if page != types.NO_PAGING && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.Interaction
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *InteractionStore) TotalSessionInteractions(ctx context.Context, sessionID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"session_id": sessionID})
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
