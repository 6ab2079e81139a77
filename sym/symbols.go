// Package sym defines canonical symbols for btk-graph log output.
// These glyphs are stable across CLI output and structured log fields,
// so operators can scan mixed logs for a subsystem at a glance.
package sym

const (
	DB     = "⛁" // database operations
	Graph  = "⌗" // graph build and query
	Export = "⇱" // exporters and layout
	Link   = "⚯" // link index construction
)
