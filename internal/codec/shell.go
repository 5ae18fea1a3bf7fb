// SPDX-License-Identifier: MPL-2.0

package codec

import (
	"bytes"
	"fmt"
	"io"

	"mvdan.cc/sh/v3/syntax"
)

const shellHeader = "#!/bin/bash\n\n"

// EncodeShell writes a bash script exporting every variable, sorted by key.
// Like EncodeEnv, values are emitted literally.
func EncodeShell(w io.Writer, vars map[string]string) error {
	if _, err := io.WriteString(w, shellHeader); err != nil {
		return err
	}
	return writeSortedLines(w, "export ", vars)
}

// ValidateShell parses an exported script and reports lines a POSIX shell would
// reject or misread: syntax errors, export names that are not identifiers
// (grouped "dev:KEY" names), and values that split into extra words.
// A nil result means the script is safe to source.
func ValidateShell(script []byte) []error {
	file, err := syntax.NewParser().Parse(bytes.NewReader(script), "export.sh")
	if err != nil {
		return []error{err}
	}

	var problems []error
	syntax.Walk(file, func(node syntax.Node) bool {
		decl, ok := node.(*syntax.DeclClause)
		if !ok || decl.Variant == nil || decl.Variant.Value != "export" {
			return true
		}
		for i, arg := range decl.Args {
			if !arg.Naked {
				continue
			}
			line := arg.Pos().Line()
			switch {
			case i == 0 && arg.Value != nil:
				problems = append(problems, fmt.Errorf("line %d: %q is not a valid shell identifier", line, wordText(arg.Value)))
			case arg.Name != nil:
				problems = append(problems, fmt.Errorf("line %d: value splits into extra word %q; quote it before sourcing", line, arg.Name.Value))
			case arg.Value != nil:
				problems = append(problems, fmt.Errorf("line %d: value splits into extra word %q; quote it before sourcing", line, wordText(arg.Value)))
			}
		}
		return false
	})
	return problems
}

func wordText(w *syntax.Word) string {
	if lit := w.Lit(); lit != "" {
		return lit
	}
	var buf bytes.Buffer
	if err := syntax.NewPrinter().Print(&buf, w); err != nil {
		return "?"
	}
	return buf.String()
}
