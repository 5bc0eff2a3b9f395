// Package domain holds the immutable value objects of the routing problem:
// locations, the route matrix, shipments, vehicles and their shifts, the
// problem they compose, and the solution produced for them. Nothing in this
// package talks to the routing engine; it is pure data plus the invariants
// the rest of the solver relies on.
package domain
