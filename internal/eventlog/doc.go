// Package eventlog models process event logs and loads them from
// external sources.
//
// A Log is an ordered collection of traces; a Trace is one ordered
// sequence of activity labels for a single case. Repeats are allowed.
// Activity labels are opaque strings compared by value; every ingestion
// path NFC-normalizes labels so that Unicode representation differences
// cannot split one activity into two.
//
// Three sources are supported:
//   - plain text: one trace per line, comma-separated activities, an
//     optional ":N" suffix repeating the trace N times;
//   - XES: the IEEE event log interchange format (concept:name events);
//   - SQLite: an event table with case and activity columns, read in a
//     deterministic order.
//
// Parsing failures are recoverable errors; a malformed input never
// aborts the process.
package eventlog
