// Package store keeps a SQLite history of check runs.
//
// Each run records the scenario, the fixture, the overall outcome, the
// canonical JSON report and its hash, and one row per check. Runs carry a
// sequence number assigned at insert; listing orders by it, never by wall
// time.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: check rows are deleted with their run
package store
