package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/avc-dev/urlshort/internal/model"
	"go.uber.org/zap"
)

// CreateShortURL нормализует URL и сохраняет его под alias или под новым случайным кодом длины length.
// Нулевая length означает длину из конфигурации.
// Занятый alias дает ErrAliasExists, существующая запись при этом не меняется.
func (u *URLUsecase) CreateShortURL(rawURL string, alias model.Code, length int) (model.Code, error) {
	originalURL, err := NormalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	code, err := u.resolveCode(alias, length)
	if err != nil {
		return "", err
	}

	link := model.Link{
		Code:      code,
		URL:       originalURL,
		CreatedAt: u.now().UTC(),
		Hits:      0,
	}

	if err := u.repo.Save(link); err != nil {
		u.logger.Error("failed to save link",
			zap.String("code", string(code)),
			zap.String("original_url", originalURL.String()),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to save link: %w", err)
	}

	u.logger.Debug("Link created", zap.String("code", string(code)), zap.String("url", originalURL.String()))

	return code, nil
}

func (u *URLUsecase) resolveCode(alias model.Code, length int) (model.Code, error) {
	if alias != "" {
		// табуляция и перевод строки сломали бы строку вывода списка
		if strings.IndexFunc(string(alias), unicode.IsControl) >= 0 {
			return "", fmt.Errorf("alias %q: %w", alias, ErrInvalidAlias)
		}

		exists, err := u.repo.Exists(alias)
		if err != nil {
			return "", fmt.Errorf("failed to check alias: %w", err)
		}
		if exists {
			return "", fmt.Errorf("alias %s: %w", alias, ErrAliasExists)
		}
		return alias, nil
	}

	if length == 0 {
		length = u.cfg.CodeLength
	}
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	code, err := u.service.GenerateUniqueCode(length)
	if err != nil {
		u.logger.Error("failed to generate code", zap.Int("length", length), zap.Error(err))
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return code, nil
}
