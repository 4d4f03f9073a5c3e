package main

import (
	"golang.org/x/sync/singleflight"
)

// Singleflight groups for deduplicating concurrent requests.
// When multiple goroutines miss the cache for the same key simultaneously,
// only one renders while the others wait and share the result.
var (
	pageRenderGroup singleflight.Group
	qrCodeGroup     singleflight.Group
)
