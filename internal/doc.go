// Package internal contains the implementation packages of prettytext.
//
// # Package Organization
//
// The render path, in the order a document flows through it:
//
//   - features: feature registry, option callbacks and setup composition
//   - features/builtin: the stock markup features (BBCode, emoji, mentions, spoilers, uploads, oneboxes)
//   - ruler: ordered, named rule chains with before/after insertion
//   - engine: goldmark adapter that runs the composed rules over markdown
//   - hoist: protects raw blocks from later rewrites and restores them
//   - allowlist: turns feature whitelists into tag, attribute and URL rules
//   - sanitizer: streaming HTML filter enforcing the allow-list
//   - pipeline: wires the above into Render and post-render processors
//
// Supporting packages:
//
//   - emoji: shortcode, glyph and emoticon tables with search
//   - onebox: queued link preview loader with SQLite cache
//   - shorturl: upload:// short URL resolution
//   - server, websocket, watcher: the live preview server
//   - config, logging, errors, validation, version: ambient concerns
//   - testutils: fixtures shared by package tests
package internal
