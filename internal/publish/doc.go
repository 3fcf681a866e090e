// Package publish writes the generated calendar feed to its serving location.
//
// The feed is a single file under docs/, which GitHub Pages serves as the
// site root. Writes create missing parent directories and replace the
// previous feed in full; there is no partial update.
package publish
