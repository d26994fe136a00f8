package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
)

type config interface {
	Dir() string
}

// DirSaver writes exports as files into one directory.
type DirSaver struct {
	dir string
}

func NewDirSaver(config config) *DirSaver {
	return &DirSaver{dir: config.Dir()}
}

func (s *DirSaver) Save(_ context.Context, name string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create export dir")
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.Wrap(err, "write export file")
	}
	logger.Info("export saved", zap.String("path", path), zap.Int("bytes", len(content)))
	return path, nil
}
