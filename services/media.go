package services

import (
	"fmt"
	"os"
	"path/filepath"
	"yatube/config"

	"github.com/google/uuid"
)

// SaveImage кладет загруженное изображение под <media>/posts/ и возвращает
// относительный путь, который сохраняется в записи
func SaveImage(data []byte, originalName string) (string, error) {
	mediaRoot := "media"
	if config.AppConfig != nil && config.AppConfig.Media.Root != "" {
		mediaRoot = config.AppConfig.Media.Root
	}

	dir := filepath.Join(mediaRoot, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	ext := filepath.Ext(originalName)
	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return filepath.ToSlash(filepath.Join("posts", name)), nil
}
