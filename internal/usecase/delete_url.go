package usecase

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"go.uber.org/zap"
)

// DeleteURL удаляет запись по коду. Отсутствие записи не ошибка, а false.
func (u *URLUsecase) DeleteURL(code model.Code) (bool, error) {
	if code == "" {
		return false, ErrEmptyCode
	}

	deleted, err := u.repo.Delete(code)
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}

	u.logger.Debug("Delete requested", zap.String("code", string(code)), zap.Bool("deleted", deleted))

	return deleted, nil
}
