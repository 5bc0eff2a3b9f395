// Package engine defines the routing engine boundary (spec §6) and ships
// the one concrete implementation this module binds it to: LocalSearchEngine,
// a cheapest-feasible-insertion constructor followed by an Or-opt
// improvement pass.
//
// No binding to a real constraint-routing solver exists in this module's
// dependency set, so the interfaces here describe the same shape a
// production binding (index manager, transit callbacks, dimensions with
// cumul/slack variables, a constraint store) would expose, and the rest
// of the solver is written against that shape rather than against
// LocalSearchEngine directly. Swapping in a different engine later means
// implementing RoutingEngine, nothing else.
package engine
