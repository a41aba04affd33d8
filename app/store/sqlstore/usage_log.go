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
		provider.stores.UsageLogStore = NewUsageLogStore(provider)
	})
}

type UsageLogStore struct {
	CommonFields
}

func NewUsageLogStore(provider SqlProviderAchieve) *UsageLogStore {
	repo := &UsageLogStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USAGE_LOG)
	repo.SetAllColumns("id", "user_id", "organization_id", "resource_type", "resource_id", "action", "created_at")
	return repo
}

func (s *UsageLogStore) Create(ctx context.Context, data types.UsageLog) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "organization_id", "resource_type", "resource_id", "action", "created_at").
		Values(data.ID, data.UserID, data.OrganizationID, data.ResourceType, data.ResourceID, data.Action, data.CreatedAt)

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

func (s *UsageLogStore) ListUserUsageLogs(ctx context.Context, userID string, page, pageSize uint64) ([]types.UsageLog, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if page != types.NO_PAGING && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.UsageLog
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *UsageLogStore) Total(ctx context.Context, userID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"user_id": userID})
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
