// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	h.cfg.Export.DefaultFormat = "sh"

	res := h.mustRun("config", "show")
	for _, want := range []string{
		"Current Configuration",
		"(using defaults)",
		"env_file: " + h.storePath(),
		"data_dir: " + h.cfg.Storage.DataDir,
		"default_format: sh",
		"color_scheme: auto",
		"verbose: false",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShowReportsSource(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	h.cfg.Source = "/etc/evm/config.cue"

	if res := h.mustRun("config", "show"); !strings.Contains(res.stdout, "/etc/evm/config.cue") {
		t.Errorf("config show should name the config file:\n%s", res.stdout)
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	res := h.mustRun("config", "dump")
	for _, want := range []string{"storage: {", "data_dir: ", "default_format: \"json\"", "color_scheme: \"auto\""} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config dump missing %q:\n%s", want, res.stdout)
		}
	}
}
