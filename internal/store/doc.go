// SPDX-License-Identifier: MPL-2.0

// Package store holds the variable mapping and its JSON persistence.
//
// A Store loads its mapping from a Storage once, applies every mutation to a copy,
// persists the copy with a full rewrite and only then swaps it in. A failed write
// therefore leaves both memory and disk as they were.
//
// Groups are not a separate field: a key "dev:API_KEY" belongs to group "dev", and a
// key without a colon belongs to the implicit "default" group.
package store
