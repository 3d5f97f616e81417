// Package store provides SQLite-backed storage for puzzle answers and
// run history.
//
// Two tables:
//   - answers: the first answer seen for each (day, part). Later runs
//     compare against it; a differing answer is a regression signal,
//     never an overwrite.
//   - runs: one row per executed day with stage timings, for tracking
//     solver performance over time.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// SQLite supports a single writer, so the connection pool is capped at
// one connection.
package store
