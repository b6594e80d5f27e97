// Package client implements the interactive client runtime.
//
// It wires the HTTP adapter, the local draft cache and per-collection
// feed sessions into a single [App]. Each opened session owns its page
// traversal and optimistic overlay; drafts submitted through a session
// are persisted locally until the server confirms or rejects them.
package client
