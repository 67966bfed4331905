/*
Package observability exposes validator activity as Prometheus metrics.

Metrics binds its collectors to scalar.Hooks, so any Validator built with
scalar.WithHooks(m.Hooks()) is counted without further wiring.
*/
package observability
