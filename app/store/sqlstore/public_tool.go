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
		provider.stores.PublicToolStore = NewPublicToolStore(provider)
	})
}

type PublicToolStore struct {
	CommonFields
}

func NewPublicToolStore(provider SqlProviderAchieve) *PublicToolStore {
	repo := &PublicToolStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_PUBLIC_TOOL)
	repo.SetAllColumns("id", "name", "description", "category", "url", "sort_order", "usage_count", "is_active", "created_at")
	return repo
}

func (s *PublicToolStore) Create(ctx context.Context, data types.PublicTool) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "description", "category", "url", "sort_order", "usage_count", "is_active", "created_at").
		Values(data.ID, data.Name, data.Description, data.Category, data.URL, data.SortOrder, data.UsageCount, data.IsActive, data.CreatedAt)

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

func (s *PublicToolStore) GetPublicTool(ctx context.Context, id string) (*types.PublicTool, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var tool types.PublicTool
	if err := s.GetReplica(ctx).Get(&tool, queryString, args...); err != nil {
		return nil, err
	}
	return &tool, nil
}

// IncrUsageCount 计数自增在数据库侧完成，避免读改写竞争
func (s *PublicToolStore) IncrUsageCount(ctx context.Context, id string) error {
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

func (s *PublicToolStore) ListPublicTools(ctx context.Context, opts types.ListPublicToolOptions, page, pageSize uint64) ([]types.PublicTool, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable())
	if opts.Category != "" {
		query = query.Where(sq.Eq{"category": opts.Category})
	}
	if opts.ActiveOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}
	query = query.OrderBy("sort_order ASC", "created_at ASC")
	if page != types.NO_PAGING && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.PublicTool
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}
