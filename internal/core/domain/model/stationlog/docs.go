// Package stationlog models the append-only per-station scan events
// (receiving, tech, packer) that the reconciliation engine matches against
// orders. Entries carry the raw tracking string as scanned plus the derived
// comparison key; they relate to orders only by best-effort key matching,
// never by a stored foreign key.
package stationlog
