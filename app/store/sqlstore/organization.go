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
		provider.stores.OrganizationStore = NewOrganizationStore(provider)
	})
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.OrganizationMemberStore = NewOrganizationMemberStore(provider)
	})
}

type OrganizationStore struct {
	CommonFields
}

func NewOrganizationStore(provider SqlProviderAchieve) *OrganizationStore {
	repo := &OrganizationStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ORGANIZATION)
	repo.SetAllColumns("id", "name", "created_at")
	return repo
}

func (s *OrganizationStore) Create(ctx context.Context, data types.Organization) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "created_at").
		Values(data.ID, data.Name, data.CreatedAt)

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

func (s *OrganizationStore) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var org types.Organization
	if err := s.GetReplica(ctx).Get(&org, queryString, args...); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *OrganizationStore) ListOrganizations(ctx context.Context, ids []string) ([]types.Organization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"id": ids}).OrderBy("created_at ASC")
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.Organization
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

type OrganizationMemberStore struct {
	CommonFields
}

func NewOrganizationMemberStore(provider SqlProviderAchieve) *OrganizationMemberStore {
	repo := &OrganizationMemberStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ORGANIZATION_MEMBER)
	repo.SetAllColumns("user_id", "organization_id", "role", "created_at")
	return repo
}

func (s *OrganizationMemberStore) Create(ctx context.Context, data types.OrganizationMember) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.Role == "" {
		data.Role = types.ORG_MEMBER_ROLE_MEMBER
	}
	query := sq.Insert(s.GetTable()).
		Columns("user_id", "organization_id", "role", "created_at").
		Values(data.UserID, data.OrganizationID, data.Role, data.CreatedAt)

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

func (s *OrganizationMemberStore) GetMember(ctx context.Context, organizationID, userID string) (*types.OrganizationMember, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID})
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var member types.OrganizationMember
	if err := s.GetReplica(ctx).Get(&member, queryString, args...); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *OrganizationMemberStore) ListUserOrganizationIDs(ctx context.Context, userID string) ([]string, error) {
	query := sq.Select("organization_id").From(s.GetTable()).Where(sq.Eq{"user_id": userID})
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var ids []string
	if err := s.GetReplica(ctx).Select(&ids, queryString, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *OrganizationMemberStore) ListMembers(ctx context.Context, organizationID string, page, pageSize uint64) ([]types.OrganizationMember, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"organization_id": organizationID}).OrderBy("created_at ASC")
	if page != types.NO_PAGING && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.OrganizationMember
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *OrganizationMemberStore) Delete(ctx context.Context, organizationID, userID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"organization_id": organizationID, "user_id": userID})
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
