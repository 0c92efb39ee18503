// Package store provides the in-memory, type-partitioned record store and
// the record creation lifecycle.
//
// A Store holds one sorted collection per schema, created lazily on first
// save. Collections order records ascending by key tuple, comparing
// element-wise in KeyFields declaration order, with ties broken by identity
// hash so iteration stays deterministic.
//
// # Invariants
//
//   - Key tuples govern ordering only. Duplicate detection compares the
//     identity hash over all field values plus the schema name, then the
//     canonical form. Records sharing a key but differing in any other
//     field are both retained.
//   - Saving an exact duplicate is a no-op unless the schema sets
//     ErrOnDuplicate, in which case it fails with *AlreadyExistsError.
//   - All mutation goes through Save. Collections are not reachable for
//     wholesale replacement; Export and the query methods return copies.
//   - A record either fully exists in the store or not at all. A failure in
//     any lifecycle step aborts that single record and leaves previously
//     saved records untouched.
//
// The store is plain mutable state with no locking: it assumes a single
// ingestion pass per process, per the single-threaded resource model.
// Construct independent stores for test isolation; there is no process-wide
// instance.
package store
