// Package web bundles the page templates so the binary serves the
// dashboard without runtime file IO.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
