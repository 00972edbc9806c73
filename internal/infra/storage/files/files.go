package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrCreateDir возвращается, когда не удалось создать каталог хранения
var ErrCreateDir = errors.New("files: failed to create directory")

// EnsureDirs создает каталоги, если их нет
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCreateDir, dir, err)
		}
	}
	return nil
}

// WipeDirs удаляет обычные файлы из каталогов. Подкаталоги не трогаются.
// Ошибки логируются, очистка продолжается. Возвращает количество удалённых файлов.
func WipeDirs(logger Logger, dirs ...string) int {
	removed := 0
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("WipeDirs: failed to read %s: %v", dir, err)
			}
			continue
		}

		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil {
				logger.Warn("WipeDirs: failed to remove %s: %v", path, err)
				continue
			}
			removed++
		}
		logger.Info("WipeDirs: cleaned %s", dir)
	}
	return removed
}

// SweepOlderThan удаляет из dir файлы .xlsx с временем изменения раньше cutoff,
// если keep для них возвращает false. Возвращает количество удалённых файлов.
func SweepOlderThan(logger Logger, dir string, cutoff time.Time, keep func(path string) bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), ".xlsx") {
			continue
		}

		path := filepath.Join(dir, e.Name())
		if keep != nil && keep(path) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			logger.Warn("SweepOlderThan: failed to stat %s: %v", path, err)
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("SweepOlderThan: failed to remove %s: %v", path, err)
			continue
		}
		logger.Info("SweepOlderThan: removed orphan file %s", path)
		removed++
	}
	return removed, nil
}
