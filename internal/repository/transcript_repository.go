package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizgen/internal/domain"

	"go.uber.org/zap"
)

const transcriptExt = ".txt"

// FileTranscriptRepository reads transcript .txt files from a directory.
type FileTranscriptRepository struct {
	dir    string
	logger *zap.Logger
}

// NewFileTranscriptRepository creates a repository over the given input directory.
func NewFileTranscriptRepository(dir string, logger *zap.Logger) *FileTranscriptRepository {
	return &FileTranscriptRepository{
		dir:    dir,
		logger: logger,
	}
}

// ListTranscripts implements domain.TranscriptRepository. Entries come
// back in filename order; subdirectories, dotfiles and non-.txt files
// are skipped.
func (r *FileTranscriptRepository) ListTranscripts(ctx context.Context) ([]*domain.WorkItem, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, domain.NewConfigurationError(fmt.Sprintf("cannot read input directory %s", r.dir), err)
	}

	seen := make(map[string]string)
	var items []*domain.WorkItem
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), transcriptExt) {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript %s: %w", path, err)
		}

		id := TranscriptID(entry.Name())
		if prev, ok := seen[id]; ok {
			// a.txt and A.txt map to the same ID; the later write wins
			r.logger.Warn("Duplicate transcript ID, outputs will overwrite each other",
				zap.String("transcript_id", id),
				zap.String("first", prev),
				zap.String("second", path))
		}
		seen[id] = path

		items = append(items, &domain.WorkItem{
			ID:         id,
			SourcePath: path,
			Text:       string(data),
		})
	}

	return items, nil
}

// TranscriptID derives the output identifier for a transcript filename:
// the basename without extension, uppercased.
func TranscriptID(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.ToUpper(base)
}

var _ domain.TranscriptRepository = (*FileTranscriptRepository)(nil)
