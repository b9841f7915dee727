// Package state holds the search session that the controller mutates.
//
// # Overview
//
// Search records the active query, the last requested page, the total hit
// count reported by the API and the hits rendered so far. It replaces loose
// module-level variables with one value owned by the search controller.
//
// # Ownership
//
// A Search is owned by exactly one controller, and the controller runs on the
// Bubble Tea update loop. No locking is done here; fetches happen in commands
// and only their results come back to the loop.
//
// # Invariants
//
//   - Page is always >= 1; Rewind never drops below 1
//   - Reset is the only way to change the query, and it clears the gallery
//   - Advance is the only way to move forward a page
//   - TotalHits is never negative
//
// # Snapshots
//
// Snapshot returns a copy with its own hits slice so the UI can render and
// hold on to it while the controller keeps mutating the session.
package state
