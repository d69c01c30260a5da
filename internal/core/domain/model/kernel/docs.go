// Package kernel provides the identifier value objects shared by the atelier
// domain model.
//
// The package includes:
//   - UUID: internal identifier for orders, clients, catalog models,
//     workstations and notifications. New values are time-ordered (version 7).
//   - TicketID: the human-facing order reference printed on tickets ("CMD-7KQ2XM").
//
// Zero values of both types are invalid; each exposes Validate so aggregates can
// reject identifiers that were not built through a constructor.
package kernel
