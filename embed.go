package signalwall

import "embed"

// EmbeddedAssets contains the page shell shipped with the framework:
// router.js, which forwards fragment changes, clicks, and form posts to the
// server and swaps in the HTML it returns.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
