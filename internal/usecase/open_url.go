package usecase

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"go.uber.org/zap"
)

// OpenURL увеличивает счетчик переходов и запускает внешний opener.
// Ошибка запуска opener только логируется: его результат не проверяется.
func (u *URLUsecase) OpenURL(code model.Code) (model.URL, error) {
	link, err := u.findLink(code)
	if err != nil {
		return "", err
	}

	link.Hits++
	if err := u.repo.Save(link); err != nil {
		u.logger.Error("failed to save hits", zap.String("code", string(code)), zap.Error(err))
		return "", fmt.Errorf("failed to save link: %w", err)
	}

	if err := u.opener.Open(link.URL); err != nil {
		u.logger.Warn("failed to start opener",
			zap.String("url", link.URL.String()),
			zap.Error(err),
		)
	}

	return link.URL, nil
}
