// Package spotify implements a thin typed facade over the Spotify Web API.
//
// # Request dispatch
//
// [Client] owns the base URL and the access token. Every catalog operation
// funnels through a single dispatch primitive that attaches the
// Authorization and Content-Type headers, assembles the full URL, and
// issues exactly one HTTP request. The transport response is returned to
// the caller as a raw [Response] with no status-code interpretation:
// callers own 4xx/5xx handling, retries, and deserialization.
//
// # Parameter shaping
//
// [Params] is an insertion-ordered parameter set. Unset optional arguments
// never reach the wire. Multi-value inputs (track IDs, include groups,
// fields) are accepted either as a comma-separated string or as individual
// elements via [List] and normalized to the canonical comma-separated form
// before transmission.
//
// # Local failures
//
// Three conditions fail before any network call, using sentinels from the
// shared package:
//   - [shared.ErrNoAccessToken]: dispatch attempted with no token set
//   - [shared.ErrConflictingParams]: mutually exclusive cursors both set
//     (recently-played after/before)
//   - [shared.ErrUnknownEnum]: a raw string does not match a known
//     enumerated wire value
//
// Token acquisition and refresh live in the auth package; this package
// only consumes the resulting access token string.
package spotify
