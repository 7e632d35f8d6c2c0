package handler

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/spf13/cobra"
)

// DeleteURL обрабатывает -d <code>
func (h *Handler) DeleteURL(cmd *cobra.Command, code string) error {
	deleted, err := h.usecase.DeleteURL(model.Code(code))
	if err != nil {
		return toExitError(err, "")
	}

	if deleted {
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Not found.")
	}

	return nil
}
