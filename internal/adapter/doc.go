// Package adapter provides the HTTP client side of the groupsync API.
//
// A [Client] holds the connection and bearer token; per-collection values
// obtained from it ([Client.MeetupsOf], [Client.DiscussionsOf],
// [Client.CommentsOf]) implement both feed.PageProvider and feed.Mutator,
// so a feed.Session can traverse and mutate a remote collection the same
// way a server-side fetcher traverses a local store.
//
// Server responses with non-2xx statuses are mapped by mapHTTPError to the
// sentinel values the feed contracts require, so callers can use
// [errors.Is] for transport-agnostic error handling (feed.ErrNotFound for
// 404, feed.ErrUnauthorized for 401 and 403, and so on).
package adapter
