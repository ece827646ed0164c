// Package web serves the beer tracker as server-rendered HTML pages.
//
// The page mirrors the TUI: a banner, an "Add New Beer" form with five rating radio buttons, and the
// "Your Beer Collection (N)" region of cards. Every mutation is a plain form post answered with a
// 303 redirect back to the collection, so the browser history never resubmits a beer.
//
// Routes
//
//	GET  /                   → collection page (optional ?q= filter)
//	POST /beers              → add a beer; missing name or brewery changes nothing
//	GET  /beers/{id}/delete  → "Delete Beer {name}?" confirmation page
//	POST /beers/{id}/delete  → delete; with confirmation enabled only when confirm=yes
//
// The [Handler] shares its [tracker.Tracker] with any other interface in the process; the tracker
// serializes access itself.
package web
