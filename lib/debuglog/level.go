// Package debuglog provides allocation-free formatted logging for use
// before the Go heap exists, modeled on the teacher's kfmt/early package
// but leveled the way the original implementation's dprint! macro is.
package debuglog

// Level orders log severities from least to most verbose, matching the
// original implementation's ALWAYS/CRITICAL/INFO/SPEW ladder.
type Level int

const (
	// Always is never filtered regardless of Threshold.
	Always Level = 0
	// Critical marks conditions that leave the system in a degraded but
	// still-running state (a dropped arena, a soft-check failure). It
	// shares Always's level.
	Critical Level = 0
	// Warn marks recoverable anomalies worth a human's attention.
	Warn Level = 1
	// Info is the default verbosity for routine boot progress.
	Info Level = 2
	// Spew is reserved for per-page, per-PTE level detail not wanted on
	// a normal boot.
	Spew Level = 3
)

// Threshold is the compile-time verbosity ceiling. Messages at a Level
// greater than Threshold are dropped before formatting. The original
// implementation ties this to a build-time feature flag; here it is a
// plain package variable so tests can tighten or loosen it.
var Threshold = Info
