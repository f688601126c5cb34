package cli_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/tagtree/internal/cli"
	"github.com/yaklabco/tagtree/pkg/fsutil"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"invalid markup", fmt.Errorf("%w: x.tt", cli.ErrInvalidMarkup), cli.ExitInvalidMarkup},
		{"check failed", fmt.Errorf("%w: 1 of 2", cli.ErrCheckFailed), cli.ExitCheckFailed},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"terminal stdin", cli.ErrStdinTerminal, cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: bad", cli.ErrConfig), cli.ExitConfigError},
		{"missing file", fmt.Errorf("%w: x", fsutil.ErrNotFound), cli.ExitIOError},
		{"modified file", fmt.Errorf("write x: %w", fsutil.ErrModified), cli.ExitIOError},
		{"path error", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, cli.ExitIOError},
		{"anything else", errors.New("boom"), cli.ExitInternalError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, cli.ExitCode(testCase.err))
		})
	}
}

func TestReported(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.Reported(fmt.Errorf("%w: x", cli.ErrInvalidMarkup)))
	assert.True(t, cli.Reported(cli.ErrCheckFailed))
	assert.False(t, cli.Reported(cli.ErrUsage))
	assert.False(t, cli.Reported(errors.New("boom")))
}
