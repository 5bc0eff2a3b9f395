// Package model holds the solver's internal representation: the dense node
// list and dummy-vehicle list the routing engine actually operates over,
// and the factory that builds them from a domain.Problem. Nothing here
// talks to the routing engine either — that starts in internal/engine and
// internal/callback.
package model
