package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"helpdesk/internal/domain/attachment"
	appErrors "helpdesk/internal/shared/errors"
)

var _ attachment.BlobStore = (*FileStore)(nil)

// FileStore keeps attachment blobs on local disk, one file per
// attachment ID under the uploads directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(ctx context.Context, id uint, r io.Reader) (int64, error) {
	path := s.Path(id)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		if os.IsExist(err) {
			return 0, appErrors.NewConflictError("attachment blob already exists")
		}
		return 0, fmt.Errorf("failed to create blob file: %w", err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(path)
		return 0, fmt.Errorf("failed to write blob: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to close blob file: %w", err)
	}

	return written, nil
}

func (s *FileStore) Open(ctx context.Context, id uint) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, appErrors.NewNotFoundError("attachment blob not found")
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, nil
}

// Path returns the on-disk location of a blob. Handlers use it for
// X-Accel-Redirect style delegation to the front proxy.
func (s *FileStore) Path(id uint) string {
	return filepath.Join(s.dir, strconv.FormatUint(uint64(id), 10))
}

// Remove unlinks a blob. The distinct errors let delete paths answer
// 404 for a missing file and 403 for a filesystem permission failure.
func (s *FileStore) Remove(ctx context.Context, id uint) error {
	if err := os.Remove(s.Path(id)); err != nil {
		if os.IsNotExist(err) {
			return appErrors.NewNotFoundError("attachment file not found")
		}
		if os.IsPermission(err) {
			return appErrors.NewForbiddenError("attachment file is not removable")
		}
		return fmt.Errorf("failed to remove blob: %w", err)
	}
	return nil
}
