// SPDX-License-Identifier: MPL-2.0

// Package codec converts variable mappings to and from their textual forms: flat JSON
// objects (and backup envelopes), dotenv KEY=VALUE lines, and bash export scripts.
//
// Decoding never mutates state; callers decide how decoded mappings are applied.
package codec
