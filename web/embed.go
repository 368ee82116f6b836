// Package web embeds the console UI static assets for single-binary distribution.
package web

import "embed"

// Assets contains the console UI build output.
//
//go:embed all:dist
var Assets embed.FS
