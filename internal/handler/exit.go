package handler

import (
	"errors"
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/avc-dev/urlshort/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	ExitOK = 0
	// ExitUsage: не хватает аргумента, неверный ввод или внутренняя ошибка
	ExitUsage = 1
	// ExitLookup: код не найден или alias уже занят
	ExitLookup = 2
)

// ExitError несет код завершения процесса и сообщение для stderr
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Execute запускает команду и возвращает код завершения процесса.
// Сообщения об ошибках пишутся в stderr команды.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), exitErr.Message)
		return exitErr.Code
	}

	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return ExitUsage
}

func toExitError(err error, alias model.Code) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		return &ExitError{Code: ExitUsage, Message: "Provide a URL.", Err: err}
	case errors.Is(err, usecase.ErrEmptyCode):
		return &ExitError{Code: ExitUsage, Message: "Provide a code.", Err: err}
	case errors.Is(err, usecase.ErrURLNotFound):
		return &ExitError{Code: ExitLookup, Message: "Not found.", Err: err}
	case errors.Is(err, usecase.ErrAliasExists):
		return &ExitError{Code: ExitLookup, Message: fmt.Sprintf("Alias '%s' already exists.", alias), Err: err}
	case errors.Is(err, usecase.ErrInvalidURL):
		return &ExitError{Code: ExitUsage, Message: "Invalid URL", Err: err}
	case errors.Is(err, usecase.ErrInvalidAlias):
		return &ExitError{Code: ExitUsage, Message: "Alias must not contain control characters.", Err: err}
	case errors.Is(err, usecase.ErrInvalidLength):
		return &ExitError{Code: ExitUsage, Message: "Length must be a positive integer.", Err: err}
	default:
		return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
}
