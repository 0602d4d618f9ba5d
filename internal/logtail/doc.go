// Package logtail reads the tail of the SkyExplorer log file.
//
// Read keeps a ring buffer of the last MaxLines matching lines, so memory
// stays bounded however large the file grows between rotations. Lines are
// matched against the logrus text format, where every entry written during
// a TUI session carries a session=<uuid> field:
//
//	time="2025-03-09T12:00:00Z" level=info msg="Searching flights from ... | Passengers: 1" level_hint=info session=3f2c9a10-... title=Search
//
// Passing the first segment of a session id is enough to select it.
package logtail
