// SPDX-License-Identifier: MPL-2.0

// Package loader imports variables from json and env files into a store.
//
// A load resolves the file format (explicit, then extension, then content sniffing),
// decodes the file, optionally namespaces the keys under a group, and then either
// replaces or merges the store mapping. The store is always persisted, even when the
// file contained no variables.
package loader
