package handler

import (
	"fmt"

	"github.com/spf13/cobra"
)

const emptyListText = "(empty)"

// ListURLs обрабатывает -l: одна строка code\turl\t[hits:N] [created:ISO] на запись
func (h *Handler) ListURLs(cmd *cobra.Command) error {
	links, err := h.usecase.ListURLs()
	if err != nil {
		return toExitError(err, "")
	}

	out := cmd.OutOrStdout()
	if len(links) == 0 {
		fmt.Fprintln(out, emptyListText)
		return nil
	}

	for _, link := range links {
		fmt.Fprintln(out, link.String())
	}

	return nil
}
