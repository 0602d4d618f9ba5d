// Package state keeps the notices raised during a SkyExplorer session.
//
// # Overview
//
// The booking package reports search outcomes through a NotificationSink.
// Store is one such sink: it appends every notice to a bounded history that
// the UI header reads to show the latest outcome and running counts.
//
// # Concurrency Model
//
// Sinks may be invoked from Bubble Tea commands as well as the update loop,
// so the Store guards its data with a readers-writer lock:
//
//   - Notify(): write lock, appends and trims
//   - Snapshot(): read lock, returns a copy
//
// # Defensive Copying
//
// Snapshot clones the notice slice so callers can hold on to it while new
// notices arrive. The zero Store is ready to use.
//
// # Usage Example
//
//	store := &state.Store{}
//	sink := booking.MultiSink{store, logging.Sink(logger)}
//	booking.Search(form, sink)
//
//	snap := store.Snapshot()
//	if last, ok := snap.Last(); ok {
//		renderHeader(last)
//	}
package state
