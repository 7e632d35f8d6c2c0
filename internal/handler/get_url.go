package handler

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/spf13/cobra"
)

// GetURL обрабатывает -e <code>
func (h *Handler) GetURL(cmd *cobra.Command, code string) error {
	url, err := h.usecase.GetOriginalURL(model.Code(code))
	if err != nil {
		return toExitError(err, "")
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
