package handler

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const usageText = `Usage:
  urlshort -s <url> [--alias <code>] [--len <n>]  Create a short code
  urlshort -e <code>                              Print original URL
  urlshort -o <code>                              Open in browser
  urlshort -l                                     List all
  urlshort -d <code>                              Delete code
  urlshort -h                                     Show help
`

// URLUsecase определяет команды, которые умеет выполнять утилита
type URLUsecase interface {
	CreateShortURL(rawURL string, alias model.Code, length int) (model.Code, error)
	GetOriginalURL(code model.Code) (model.URL, error)
	OpenURL(code model.Code) (model.URL, error)
	ListURLs() ([]model.Link, error)
	DeleteURL(code model.Code) (bool, error)
}

// Handler связывает аргументы командной строки с use case'ами
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает новый Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

type options struct {
	shorten bool
	echo    bool
	open    bool
	list    bool
	delete  bool
	alias   string
	length  string
}

// NewRootCommand собирает корневую команду. Действие выбирается флагом,
// за которым идет позиционный аргумент (URL или код).
func (h *Handler) NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "urlshort",
		Short:         "Local URL shortener",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.dispatch(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.shorten, "shorten", "s", false, "create a short code for <url>")
	flags.BoolVarP(&opts.echo, "echo", "e", false, "print the original URL of <code>")
	flags.BoolVarP(&opts.open, "open", "o", false, "open the URL of <code> in the browser")
	flags.BoolVarP(&opts.list, "list", "l", false, "list all codes")
	flags.BoolVarP(&opts.delete, "delete", "d", false, "delete <code>")
	flags.StringVar(&opts.alias, "alias", "", "use <code> instead of a random one")
	flags.StringVar(&opts.length, "len", "", "length of the random code")
	cmd.MarkFlagsMutuallyExclusive("shorten", "echo", "open", "list", "delete")

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usageText)
	})
	// Нераспознанная команда печатает справку, как и -h
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		h.logger.Debug("unrecognized arguments", zap.Error(err))
		fmt.Fprint(c.OutOrStdout(), usageText)
		return nil
	})

	return cmd
}

func (h *Handler) dispatch(cmd *cobra.Command, opts *options, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	switch {
	case opts.shorten:
		return h.CreateURL(cmd, arg, opts.alias, opts.length)
	case opts.echo:
		return h.GetURL(cmd, arg)
	case opts.open:
		return h.OpenURL(cmd, arg)
	case opts.list:
		return h.ListURLs(cmd)
	case opts.delete:
		return h.DeleteURL(cmd, arg)
	default:
		cmd.HelpFunc()(cmd, args)
		return nil
	}
}
