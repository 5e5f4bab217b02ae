// Package history provides SQLite-based storage of past rstcheck runs.
//
// Saving is opt-in (--save) and write-only from the checker's point of
// view: stored outcomes are never consulted while checking, so there is no
// caching or incremental behavior. The store exists so CI jobs and authors
// can inspect how a document set has been trending ("rstcheck history").
package history
