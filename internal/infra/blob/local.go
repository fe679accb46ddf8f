package blob

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"groupbuy-service/internal/pkg/errs"
)

var ErrInvalidKey = errs.New("object key escapes the storage root")

// LocalStore writes objects below root. They are served by the router under
// publicBaseURL.
type LocalStore struct {
	root          string
	publicBaseURL string
}

func NewLocalStore(root, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.Wrap(err, "create upload root")
	}
	return &LocalStore{root: root, publicBaseURL: strings.TrimSuffix(publicBaseURL, "/")}, nil
}

func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) Save(ctx context.Context, key, _ string, body io.Reader) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return "", ErrInvalidKey
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errs.Wrap(err, "create upload directory")
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.Wrapf(err, "create %s", clean)
	}
	_, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(dst)
		return "", errs.Wrapf(err, "write %s", clean)
	}

	return s.publicBaseURL + "/" + clean, nil
}
