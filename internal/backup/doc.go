// Package backup implements the portable data-exchange subsystem: a zip
// archive codec for the four record families plus attachment files, an
// export orchestrator that snapshots the store into an archive, and an
// import orchestrator that merges an archive back atomically.
//
// # Archive format
//
// A single zip file with one top-level entry named "data" (a JSON document
// mapping family names to record sequences) and, optionally, a top-level
// "files" directory holding attachment files under their stored names.
//
// # Merge semantics
//
// Import applies families in the fixed order categories, entries, ratings,
// comments, so foreign keys are satisfied by the union of local and incoming
// records. Each record is applied as an idempotent upsert by id
// (replace-wins); re-importing an archive is a no-op. All relational changes
// and the attachment copy form one unit of work: any failure rolls the whole
// import back.
//
// # Concurrency
//
// At most one export or import runs against a store at a time; a busy store
// reports common.ErrBusy. Cancelling before a destination or source is
// chosen reports common.ErrCancelled, which is a normal outcome.
package backup
