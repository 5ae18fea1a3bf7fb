// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zxygithub/evm/internal/codec"
	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/pkg/types"
)

type (
	// Request describes one load.
	Request struct {
		// Path is the file to read. It must be a regular file.
		Path types.FilesystemPath
		// Format forces a decode format. Empty means detect.
		Format codec.Format
		// Replace discards the current mapping instead of merging into it.
		Replace bool
		// Group namespaces every loaded key. Ignored when Nest is set.
		Group types.GroupName
		// Nest expands top-level JSON objects into groups.
		Nest bool
	}

	// Result summarizes a completed load.
	Result struct {
		Loaded          int
		Replaced        bool
		Format          codec.Format
		IsBackup        bool
		BackupTimestamp string
		NestedGroups    int
		// Group is the namespace applied to the keys, empty when none was.
		Group types.GroupName
	}

	// FileNotFoundError is returned when the input path is missing or not a regular file.
	FileNotFoundError struct {
		Path string
	}
)

// Error implements the error interface.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// Unwrap returns issue.ErrNotFound for errors.Is() compatibility.
func (e *FileNotFoundError) Unwrap() error { return issue.ErrNotFound }

// ReadFile returns the contents of a regular file. Missing paths and non-regular
// files yield *FileNotFoundError; other failures wrap issue.ErrIOFailure.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("%w: %v", issue.ErrIOFailure, err)
	}
	if !info.Mode().IsRegular() {
		return nil, &FileNotFoundError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", issue.ErrIOFailure, err)
	}
	return data, nil
}

// Load reads req.Path into s. Nothing is changed when reading or decoding fails.
func Load(s *store.Store, req Request) (Result, error) {
	path := req.Path.String()
	data, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	format := req.Format
	if format == "" {
		format = codec.Detect(path)
	}

	decoded, err := codec.Decode(data, format, codec.JSONOptions{Nest: req.Nest})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	vars := decoded.Vars
	group := req.Group
	if req.Nest {
		group = ""
	}
	if group != "" {
		vars = qualify(group, vars)
	}

	if req.Replace {
		err = s.Replace(vars)
	} else {
		err = s.Merge(vars)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Loaded:          len(vars),
		Replaced:        req.Replace,
		Format:          format,
		IsBackup:        decoded.IsBackup,
		BackupTimestamp: decoded.BackupTimestamp,
		NestedGroups:    decoded.NestedGroups,
		Group:           group,
	}, nil
}

// qualify prefixes every key with group unless it already carries that prefix.
func qualify(group types.GroupName, vars map[string]string) map[string]string {
	out := make(map[string]string, len(vars))
	for key, value := range vars {
		if !group.Owns(key) {
			key = group.Qualify(key)
		}
		out[key] = value
	}
	return out
}
