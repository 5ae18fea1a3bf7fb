// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/zxygithub/evm/internal/config"
	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/internal/testutil"
	"github.com/zxygithub/evm/pkg/types"
)

type (
	stubConfigProvider struct {
		cfg *config.Config
		err error
	}

	fakeLauncher struct {
		argv    []string
		environ []string
		err     error
	}

	// cliHarness runs commands against a store file in a temporary data directory.
	cliHarness struct {
		t        *testing.T
		cfg      *config.Config
		provider ConfigProvider
		launcher *fakeLauncher
		clock    *testutil.FakeClock
		environ  []string
		setenv   map[string]string
	}

	cliResult struct {
		stdout string
		stderr string
		code   types.ExitCode
	}
)

func (s *stubConfigProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	cfg := *s.cfg
	return &cfg, nil
}

func (f *fakeLauncher) Exec(argv, environ []string) error {
	f.argv = argv
	f.environ = environ
	return f.err
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = t.TempDir()

	return &cliHarness{
		t:        t,
		cfg:      cfg,
		provider: &stubConfigProvider{cfg: cfg},
		launcher: &fakeLauncher{},
		clock:    testutil.NewFakeClock(time.Time{}),
		environ:  []string{"HOME=/home/test", "PATH=/usr/bin"},
		setenv:   map[string]string{},
	}
}

// run executes one evm invocation with a fresh App, as a separate process would.
func (h *cliHarness) run(args ...string) cliResult {
	h.t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config:   h.provider,
		Launcher: h.launcher,
		Clock:    h.clock,
		Environ:  func() []string { return h.environ },
		Setenv: func(key, value string) error {
			h.setenv[key] = value
			return nil
		},
		Stdin:  &bytes.Buffer{},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	root := NewRootCommand(app)
	root.SetArgs(args)
	code := types.ExitFailure
	if err := root.ExecuteContext(context.Background()); err != nil {
		stderr.WriteString(err.Error())
	} else {
		code = app.ExitCode()
	}

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// mustRun fails the test unless the invocation exits 0.
func (h *cliHarness) mustRun(args ...string) cliResult {
	h.t.Helper()
	res := h.run(args...)
	if res.code != types.ExitSuccess {
		h.t.Fatalf("evm %v exited %d\nstdout:\n%s\nstderr:\n%s", args, res.code, res.stdout, res.stderr)
	}
	return res
}

func (h *cliHarness) storePath() string {
	return filepath.Join(h.cfg.Storage.DataDir, config.StoreFileName)
}

// stored reopens the store file and returns its mapping.
func (h *cliHarness) stored() map[string]string {
	return store.NewFileStorage(h.storePath(), nil).Read()
}
