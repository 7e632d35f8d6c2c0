package handler

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avc-dev/urlshort/internal/config"
	"github.com/avc-dev/urlshort/internal/model"
	"github.com/avc-dev/urlshort/internal/repository"
	"github.com/avc-dev/urlshort/internal/service"
	"github.com/avc-dev/urlshort/internal/store"
	"github.com/avc-dev/urlshort/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOpener struct {
	opened []model.URL
	err    error
}

func (o *fakeOpener) Open(url model.URL) error {
	o.opened = append(o.opened, url)
	return o.err
}

type result struct {
	code   int
	stdout string
	stderr string
}

type testCLI struct {
	t      *testing.T
	opener *fakeOpener
	h      *Handler
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	cfg := config.NewDefaultConfig()
	logger := zap.NewNop()

	fileStore := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"), logger)
	repo := repository.New(fileStore)
	urlService := service.NewURLService(repo, cfg)
	opener := &fakeOpener{}
	urlUsecase := usecase.NewURLUsecase(repo, urlService, opener, cfg, logger)

	return &testCLI{
		t:      t,
		opener: opener,
		h:      New(urlUsecase, logger),
	}
}

func (c *testCLI) run(args ...string) result {
	c.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := c.h.NewRootCommand()
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	code := Execute(cmd)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func (c *testCLI) create(args ...string) string {
	c.t.Helper()

	res := c.run(append([]string{"-s"}, args...)...)
	require.Equal(c.t, ExitOK, res.code, res.stderr)

	return strings.TrimSpace(res.stdout)
}

func TestHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "short help flag", args: []string{"-h"}},
		{name: "long help flag", args: []string{"--help"}},
		{name: "unknown flag", args: []string{"-x"}},
		{name: "unknown long flag", args: []string{"--frobnicate", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cli := newTestCLI(t)

			// Act
			res := cli.run(tt.args...)

			// Assert
			assert.Equal(t, ExitOK, res.code)
			assert.Equal(t, usageText, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestCreateAndEcho(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedURL string
	}{
		{name: "bare host", input: "example.com", expectedURL: "https://example.com/"},
		{name: "http scheme kept", input: "http://example.com/a?b=1", expectedURL: "http://example.com/a?b=1"},
		{name: "upper-case host", input: "HTTPS://Example.COM/Path", expectedURL: "https://example.com/Path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cli := newTestCLI(t)

			// Act
			code := cli.create(tt.input)
			res := cli.run("-e", code)

			// Assert
			assert.Len(t, code, service.DefaultCodeLength)
			assert.Equal(t, ExitOK, res.code)
			assert.Equal(t, tt.expectedURL+"\n", res.stdout)
		})
	}
}

func TestCreate_WithLength(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	code := cli.create("example.com", "--len", "3")

	// Assert
	assert.LessOrEqual(t, len(code), 3)
	assert.NotEmpty(t, code)
}

func TestCreate_InvalidLength(t *testing.T) {
	for _, value := range []string{"0", "-2", "abc"} {
		t.Run(value, func(t *testing.T) {
			// Arrange
			cli := newTestCLI(t)

			// Act
			res := cli.run("-s", "example.com", "--len="+value)

			// Assert
			assert.Equal(t, ExitUsage, res.code)
			assert.Empty(t, res.stdout)
			assert.NotEmpty(t, res.stderr)
		})
	}
}

func TestCreate_WithAlias(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	code := cli.create("example.com", "--alias", "myc")
	res := cli.run("-e", "myc")

	// Assert
	assert.Equal(t, "myc", code)
	assert.Equal(t, "https://example.com/\n", res.stdout)
}

func TestCreate_AliasIgnoresLength(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	res := cli.run("-s", "example.com", "--alias", "myc", "--len", "abc")

	// Assert
	assert.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "myc\n", res.stdout)
}

func TestCreate_AliasWithControlCharacters(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	res := cli.run("-s", "example.com", "--alias", "a\tb")
	list := cli.run("-l")

	// Assert
	assert.Equal(t, ExitUsage, res.code)
	assert.Equal(t, "Alias must not contain control characters.\n", res.stderr)
	assert.Equal(t, "(empty)\n", list.stdout)
}

func TestCreate_DuplicateAlias(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)
	cli.create("first.com", "--alias", "myc")

	// Act
	res := cli.run("-s", "second.com", "--alias", "myc")

	// Assert
	assert.Equal(t, ExitLookup, res.code)
	assert.Equal(t, "Alias 'myc' already exists.\n", res.stderr)
	assert.Empty(t, res.stdout)

	echo := cli.run("-e", "myc")
	assert.Equal(t, "https://first.com/\n", echo.stdout)
}

func TestCreate_InvalidURL(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	res := cli.run("-s", "http://")

	// Assert
	assert.Equal(t, ExitUsage, res.code)
	assert.Equal(t, "Invalid URL\n", res.stderr)
}

func TestMissingArgument(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "create", args: []string{"-s"}, expected: "Provide a URL.\n"},
		{name: "create blank", args: []string{"-s", "   "}, expected: "Provide a URL.\n"},
		{name: "echo", args: []string{"-e"}, expected: "Provide a code.\n"},
		{name: "open", args: []string{"-o"}, expected: "Provide a code.\n"},
		{name: "delete", args: []string{"-d"}, expected: "Provide a code.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cli := newTestCLI(t)

			// Act
			res := cli.run(tt.args...)

			// Assert
			assert.Equal(t, ExitUsage, res.code)
			assert.Equal(t, tt.expected, res.stderr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestNotFound(t *testing.T) {
	for _, flag := range []string{"-e", "-o"} {
		t.Run(flag, func(t *testing.T) {
			// Arrange
			cli := newTestCLI(t)

			// Act
			res := cli.run(flag, "nope")

			// Assert
			assert.Equal(t, ExitLookup, res.code)
			assert.Equal(t, "Not found.\n", res.stderr)
			assert.Empty(t, cli.opener.opened)
		})
	}
}

func TestOpen_IncrementsHits(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)
	cli.create("example.com", "--alias", "ex")

	// Act
	first := cli.run("-o", "ex")
	second := cli.run("-o", "ex")
	list := cli.run("-l")

	// Assert
	assert.Equal(t, ExitOK, first.code)
	assert.Equal(t, "Opened https://example.com/\n", first.stdout)
	assert.Equal(t, ExitOK, second.code)
	assert.Equal(t, []model.URL{"https://example.com/", "https://example.com/"}, cli.opener.opened)
	assert.Contains(t, list.stdout, "[hits:2]")
}

func TestOpen_OpenerFailureIsNotFatal(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)
	cli.opener.err = errors.New("xdg-open: not found")
	cli.create("example.com", "--alias", "ex")

	// Act
	res := cli.run("-o", "ex")
	list := cli.run("-l")

	// Assert
	assert.Equal(t, ExitOK, res.code)
	assert.Equal(t, "Opened https://example.com/\n", res.stdout)
	assert.Contains(t, list.stdout, "[hits:1]")
}

func TestList(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		// Arrange
		cli := newTestCLI(t)

		// Act
		res := cli.run("-l")

		// Assert
		assert.Equal(t, ExitOK, res.code)
		assert.Equal(t, "(empty)\n", res.stdout)
	})

	t.Run("storage order", func(t *testing.T) {
		// Arrange
		cli := newTestCLI(t)
		cli.create("a.com", "--alias", "a")
		cli.create("b.com", "--alias", "b")
		cli.create("c.com", "--alias", "c")
		cli.run("-o", "b")

		// Act
		res := cli.run("--list")

		// Assert
		require.Equal(t, ExitOK, res.code)
		lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "a\thttps://a.com/\t[hits:0] [created:"))
		assert.True(t, strings.HasPrefix(lines[1], "b\thttps://b.com/\t[hits:1] [created:"))
		assert.True(t, strings.HasPrefix(lines[2], "c\thttps://c.com/\t[hits:0] [created:"))
	})
}

func TestDelete(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)
	cli.create("a.com", "--alias", "a")
	cli.create("b.com", "--alias", "b")

	// Act
	deleted := cli.run("-d", "a")
	missing := cli.run("-d", "a")
	list := cli.run("-l")

	// Assert
	assert.Equal(t, ExitOK, deleted.code)
	assert.Equal(t, "Deleted.\n", deleted.stdout)
	assert.Equal(t, ExitOK, missing.code)
	assert.Equal(t, "Not found.\n", missing.stdout)
	assert.NotContains(t, list.stdout, "a.com")
	assert.Contains(t, list.stdout, "b.com")
}

func TestConflictingCommands(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	res := cli.run("-s", "example.com", "-l")

	// Assert
	assert.Equal(t, ExitUsage, res.code)
	assert.NotEmpty(t, res.stderr)
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		alias    model.Code
		code     int
		message  string
		sentinel error
	}{
		{name: "not found", err: usecase.ErrURLNotFound, code: ExitLookup, message: "Not found.", sentinel: usecase.ErrURLNotFound},
		{name: "alias exists", err: usecase.ErrAliasExists, alias: "x", code: ExitLookup, message: "Alias 'x' already exists.", sentinel: usecase.ErrAliasExists},
		{name: "empty url", err: usecase.ErrEmptyURL, code: ExitUsage, message: "Provide a URL.", sentinel: usecase.ErrEmptyURL},
		{name: "internal", err: service.ErrMaxRetriesExceeded, code: ExitUsage, message: service.ErrMaxRetriesExceeded.Error(), sentinel: service.ErrMaxRetriesExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := toExitError(tt.err, tt.alias)

			// Assert
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.code, exitErr.Code)
			assert.Equal(t, tt.message, exitErr.Error())
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}
