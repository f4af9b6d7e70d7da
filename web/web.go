// Package web embeds the static checkout pages served by the gateway.
package web

import "embed"

//go:embed static
var Assets embed.FS
