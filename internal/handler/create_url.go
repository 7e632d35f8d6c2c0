package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/avc-dev/urlshort/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CreateURL обрабатывает -s <url> [--alias <code>] [--len <n>] и печатает код
func (h *Handler) CreateURL(cmd *cobra.Command, rawURL, alias, lengthArg string) error {
	if strings.TrimSpace(rawURL) == "" {
		return toExitError(usecase.ErrEmptyURL, "")
	}

	// с alias длина кода не используется
	length := 0
	if alias == "" && cmd.Flags().Changed("len") {
		n, err := strconv.Atoi(lengthArg)
		if err != nil || n <= 0 {
			return toExitError(fmt.Errorf("%w: %q", usecase.ErrInvalidLength, lengthArg), "")
		}
		length = n
	}

	code, err := h.usecase.CreateShortURL(rawURL, model.Code(alias), length)
	if err != nil {
		h.logger.Debug("create failed", zap.String("url", rawURL), zap.Error(err))
		return toExitError(err, model.Code(alias))
	}

	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
