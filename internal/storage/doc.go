// Package storage provides the persistent store for in-progress applications.
//
// The store holds a single serialized blob per key. The application uses one
// fixed key (StorageKey) for the whole form, so a session survives process
// restarts: the session writes the full record after every mutation and reads
// it back once at startup.
//
// FileStore is the production implementation (one file per key under the user
// config directory). MemStore is an in-memory implementation with fault
// injection hooks, used by session and wizard tests.
//
// Store failures are never fatal to the caller: a session that cannot persist
// keeps running with its in-memory state as the source of truth.
package storage
