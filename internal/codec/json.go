// SPDX-License-Identifier: MPL-2.0

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/zxygithub/evm/internal/issue"
)

const (
	envelopeVariablesField = "variables"
	envelopeTimestampField = "timestamp"

	// UnknownTimestamp is reported for envelopes without a timestamp field.
	UnknownTimestamp = "unknown"
)

type (
	// JSONOptions controls JSON decoding.
	JSONOptions struct {
		// Nest expands top-level object values into "topKey:innerKey" entries.
		Nest bool
	}

	// Decoded is the result of decoding a file.
	Decoded struct {
		// Vars is the decoded mapping. It is never nil on success.
		Vars map[string]string
		// IsBackup is set when the document was a backup envelope.
		IsBackup bool
		// BackupTimestamp is the envelope timestamp, or UnknownTimestamp.
		BackupTimestamp string
		// NestedGroups counts the top-level objects expanded in nest mode.
		NestedGroups int
	}
)

// EncodeJSON writes vars as an indented JSON object with sorted keys.
func EncodeJSON(w io.Writer, vars map[string]string) error {
	return writeIndentedJSON(w, vars)
}

// EncodeEnvelope writes a backup envelope. Field order is timestamp, variables.
func EncodeEnvelope(w io.Writer, timestamp string, vars map[string]string) error {
	if vars == nil {
		vars = map[string]string{}
	}
	return writeIndentedJSON(w, struct {
		Timestamp string            `json:"timestamp"`
		Variables map[string]string `json:"variables"`
	}{timestamp, vars})
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// DecodeJSON decodes a JSON document into a mapping. The top-level value must be an
// object. Objects with a "variables" field are unwrapped as backup envelopes; with
// opts.Nest the remaining top-level object values become groups.
func DecodeJSON(data []byte, opts JSONOptions) (Decoded, error) {
	top, err := decodeObject(data)
	if err != nil {
		return Decoded{}, err
	}

	out := Decoded{}
	if raw, ok := top[envelopeVariablesField]; ok {
		inner, isObj := raw.(map[string]any)
		if !isObj {
			return Decoded{}, fmt.Errorf("%w: backup %q field must be an object", issue.ErrInvalidFormat, envelopeVariablesField)
		}
		out.IsBackup = true
		out.BackupTimestamp = UnknownTimestamp
		if ts, ok := top[envelopeTimestampField]; ok {
			out.BackupTimestamp = Stringify(ts)
		}
		top = inner
	}

	out.Vars = make(map[string]string, len(top))
	for key, value := range top {
		group, isObj := value.(map[string]any)
		if !opts.Nest || !isObj {
			out.Vars[key] = Stringify(value)
			continue
		}
		out.NestedGroups++
		for inner, v := range group {
			out.Vars[key+":"+inner] = Stringify(v)
		}
	}
	return out, nil
}

// DecodeFlatJSON decodes a flat object, coercing every value to a string.
func DecodeFlatJSON(data []byte) (map[string]string, error) {
	top, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]string, len(top))
	for k, v := range top {
		vars[k] = Stringify(v)
	}
	return vars, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: malformed json: %v", issue.ErrInvalidFormat, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after json document", issue.ErrInvalidFormat)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a json object, got %s", issue.ErrInvalidFormat, jsonKind(doc))
	}
	return obj, nil
}

// Stringify renders a decoded JSON value as a variable value. Numbers keep their
// source text, null becomes "", and composite values are re-encoded compactly.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
