package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrFileTooLarge возвращается, когда загрузка превышает лимит.
var ErrFileTooLarge = errors.New("file exceeds upload size limit")

// MediaStore хранит фотографии проектов на диске.
// Файлы раскладываются по каталогам владельцев, путь в БД относительный.
type MediaStore struct {
	root     string
	maxBytes int64
}

func NewMediaStore(root string, maxUploadMB int64) (*MediaStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", root, err)
	}

	return &MediaStore{
		root:     root,
		maxBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Root возвращает корневой каталог хранилища.
func (s *MediaStore) Root() string {
	return s.root
}

// Save записывает файл через временное имя и атомарно переименовывает.
// Возвращает относительный путь и фактический размер.
func (s *MediaStore) Save(ctx context.Context, userID uuid.UUID, originalName string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	ext := filepath.Ext(sanitizeName(originalName))
	fileName := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String()[:8], ext)

	ownerDir := filepath.Join(s.root, userID.String())
	if err := os.MkdirAll(ownerDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог пользователя: %w", err)
	}

	target := filepath.Join(ownerDir, fileName)
	tmp := target + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limited := io.LimitedReader{R: r, N: s.maxBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxBytes {
		_ = os.Remove(tmp)
		return "", 0, ErrFileTooLarge
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return filepath.Join(userID.String(), fileName), written, nil
}

// Delete удаляет файл. Отсутствие файла ошибкой не считается.
func (s *MediaStore) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean := filepath.Clean(relativePath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("storage: недопустимый путь %q", relativePath)
	}

	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" {
		name = "photo"
	}
	return name
}
