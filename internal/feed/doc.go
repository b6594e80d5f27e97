// Package feed implements the paginated-collection synchronization engine
// shared by meetups, discussions and comments.
//
// The engine is a pure state-reduction pipeline driven by discrete events:
// page-fetch completions, mutation confirmations and user-initiated loads.
// Reads flow through a [Controller] (bidirectional keyset pagination over a
// [PageProvider]) and are merged with an [Overlay] holding client-local
// pending creates and deletes. Writes flow through the overlay first (the
// item is visible immediately under a pending identifier), then through the
// external [Mutator]; a [Ledger] reconciles the pending identifier with the
// server-assigned one on confirmation, or rolls the optimistic state back
// on failure.
//
// A [Session] wires the pieces together into the read model and mutation
// entry points an interactive client holds for one collection. Sessions for
// different collections, or for the same collection held by different
// actors, share no state.
package feed
