// SPDX-License-Identifier: MPL-2.0

package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zxygithub/evm/internal/issue"
)

const (
	// FormatJSON is a flat JSON object of string values.
	FormatJSON Format = "json"
	// FormatEnv is one KEY=VALUE per line.
	FormatEnv Format = "env"
	// FormatShell is a bash script of export statements. It is export-only.
	FormatShell Format = "sh"

	// formatBackup is accepted as a load format token and decodes as JSON.
	formatBackup = "backup"

	// sniffSize is how much of an extensionless file is inspected by Detect.
	sniffSize = 100
)

type (
	// Format names one of the supported textual representations.
	Format string

	// UnsupportedFormatError is returned for unknown format tokens or for
	// decoding a write-only format.
	UnsupportedFormatError struct {
		Value     string
		Operation string
	}
)

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s format: %s", e.Operation, e.Value)
}

// Unwrap returns issue.ErrInvalidFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return issue.ErrInvalidFormat }

// String returns the format token.
func (f Format) String() string { return string(f) }

// Decodable reports whether files in this format can be loaded.
func (f Format) Decodable() bool { return f == FormatJSON || f == FormatEnv }

// ParseFormat parses a user-supplied format token case-insensitively.
// "backup" is an alias of json.
func ParseFormat(token string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case string(FormatJSON), formatBackup:
		return FormatJSON, nil
	case string(FormatEnv):
		return FormatEnv, nil
	case string(FormatShell):
		return FormatShell, nil
	default:
		return "", &UnsupportedFormatError{Value: token, Operation: "file"}
	}
}

// Detect picks a decode format for path. The extension wins (.json and .backup are
// JSON, .env is dotenv); otherwise the first bytes are sniffed. Unreadable files
// default to JSON so the decode step reports the real error.
func Detect(path string) Format {
	switch filepath.Ext(path) {
	case ".json", ".backup":
		return FormatJSON
	case ".env":
		return FormatEnv
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatJSON
	}
	defer f.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatJSON
	}
	return DetectContent(head[:n])
}

// DetectContent classifies content as JSON when it starts with '{' after trimming
// whitespace, and as dotenv otherwise.
func DetectContent(head []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(head), []byte("{")) {
		return FormatJSON
	}
	return FormatEnv
}

// Encode writes vars to w in format f.
func Encode(w io.Writer, vars map[string]string, f Format) error {
	switch f {
	case FormatJSON:
		return EncodeJSON(w, vars)
	case FormatEnv:
		return EncodeEnv(w, vars)
	case FormatShell:
		return EncodeShell(w, vars)
	default:
		return &UnsupportedFormatError{Value: string(f), Operation: "export"}
	}
}

// Decode decodes data in format f. Only JSON honors opts.
func Decode(data []byte, f Format, opts JSONOptions) (Decoded, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data, opts)
	case FormatEnv:
		return Decoded{Vars: DecodeEnv(data)}, nil
	default:
		return Decoded{}, &UnsupportedFormatError{Value: string(f), Operation: "load"}
	}
}
