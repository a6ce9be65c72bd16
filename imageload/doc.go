// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imageload provides an asynchronous, per-source image cache.
//
// Each source string maps to exactly one entry for the lifetime of the
// Loader. An entry moves through a small state machine:
//
//	NotStarted -> Loading -> Loaded
//	                      -> Failed
//
// Fetching and decoding run on worker goroutines. Their results are not
// applied immediately: they are queued and delivered by Poll or Wait on the
// goroutine that owns the Loader. Delivery updates the entry and runs every
// callback registered with Then while the load was outstanding, in
// registration order. This keeps entry state and callbacks single-threaded,
// the same way a browser delivers image load events on its event loop.
//
// Usage:
//
//	l := imageload.NewLoader()
//	l.Then("sprite.png", func(img *imageload.Image, err error) {
//	    if err != nil {
//	        return
//	    }
//	    dc.DrawImage(img.Buf, 10, 10)
//	})
//	if err := l.Wait(ctx); err != nil {
//	    log.Print(err)
//	}
//
// A Loader is NOT safe for concurrent use.
package imageload
