package handler

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/spf13/cobra"
)

// OpenURL обрабатывает -o <code>
func (h *Handler) OpenURL(cmd *cobra.Command, code string) error {
	url, err := h.usecase.OpenURL(model.Code(code))
	if err != nil {
		return toExitError(err, "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", url)
	return nil
}
