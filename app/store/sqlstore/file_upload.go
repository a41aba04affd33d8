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
		provider.stores.FileUploadStore = NewFileUploadStore(provider)
	})
}

type FileUploadStore struct {
	CommonFields
}

func NewFileUploadStore(provider SqlProviderAchieve) *FileUploadStore {
	repo := &FileUploadStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_FILE_UPLOAD)
	repo.SetAllColumns("id", "filename", "extracted_text", "uploader_id", "created_at")
	return repo
}

func (s *FileUploadStore) Create(ctx context.Context, data types.FileUpload) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "filename", "extracted_text", "uploader_id", "created_at").
		Values(data.ID, data.Filename, data.ExtractedText, data.UploaderID, data.CreatedAt)

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

func (s *FileUploadStore) GetFileUpload(ctx context.Context, id string) (*types.FileUpload, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var file types.FileUpload
	if err := s.GetReplica(ctx).Get(&file, queryString, args...); err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *FileUploadStore) ListFileUploads(ctx context.Context, ids []string) ([]types.FileUpload, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"id": ids}).OrderBy("created_at ASC")
	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.FileUpload
	if err := s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}
