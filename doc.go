// Package gof is a small, runnable catalogue of classic object-oriented design
// patterns expressed in idiomatic Go.
//
// Each pattern lives in its own leaf package and carries no dependency on the
// others:
//
//   - singleton: one lazily created shared instance, owned by a Holder
//   - factory:   kind-keyed construction of Vehicle variants
//   - adapter:   re-exposing SpecificRequest as Request
//   - decorator: cost layering around a Coffee
//   - composite: uniform leaf / group naming
//   - facade:    one StartSystem call over two subsystems
//   - observer:  ordered one-to-many notification
//   - chain:     ordered handlers evaluated until one matches
//   - iterator:  a one-shot forward cursor over a snapshot
//   - command:   a pluggable command behind a RemoteControl
//
// The root package only holds the shared error taxonomy. Every package returns
// small typed errors that unwrap to one of the sentinels below, so callers can
// match with errors.Is and inspect context with errors.As.
//
// Wiring stays explicit: the composition root (cmd/gof) builds the catalog of
// demos, owns the singleton Holder, and decides exit codes.
//
// Package gof See subpackages:
//   - singleton, factory, adapter, decorator, composite, facade,
//     observer, chain, iterator, command: one pattern each
//   - catalog: ordered registry of runnable demos
//   - cmd/gof: CLI that lists or runs the demos
package gof
