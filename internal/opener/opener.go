// Package opener открывает URL в браузере, не дожидаясь его завершения.
package opener

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
)

// SystemOpener запускает программу открытия URL: open на darwin, cmd /c start на windows,
// xdg-open на остальных. Если задан browser, запускается он.
type SystemOpener struct {
	browser string
	logger  *zap.Logger
}

// New создает SystemOpener. Пустой browser означает программу по умолчанию.
func New(browser string, logger *zap.Logger) *SystemOpener {
	return &SystemOpener{
		browser: browser,
		logger:  logger,
	}
}

// Open запускает программу и сразу возвращается. Код ее завершения не проверяется.
func (o *SystemOpener) Open(url model.URL) error {
	var err error
	if o.browser == "" {
		err = open.Start(url.String())
	} else {
		err = open.StartWith(url.String(), o.browser)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	o.logger.Debug("Opener started", zap.String("url", url.String()), zap.String("browser", o.browser))

	return nil
}
