// SPDX-License-Identifier: MPL-2.0

package config

import (
	"testing"

	"github.com/zxygithub/evm/pkg/types"
)

func TestLoadOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       LoadOptions
		wantFields int
	}{
		{name: "all empty", opts: LoadOptions{}},
		{name: "all valid", opts: LoadOptions{ConfigFilePath: "/tmp/config.cue", ConfigDirPath: "/tmp/config"}},
		{name: "whitespace file", opts: LoadOptions{ConfigFilePath: types.FilesystemPath("   ")}, wantFields: 1},
		{name: "both whitespace", opts: LoadOptions{ConfigFilePath: "\t", ConfigDirPath: " "}, wantFields: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantFields == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			loadErr, ok := err.(*InvalidLoadOptionsError)
			if !ok {
				t.Fatalf("Validate() = %T, want *InvalidLoadOptionsError", err)
			}
			if len(loadErr.FieldErrors) != tt.wantFields {
				t.Errorf("FieldErrors = %d, want %d", len(loadErr.FieldErrors), tt.wantFields)
			}
		})
	}
}
