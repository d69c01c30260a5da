// Package order provides the Order aggregate of the tailoring shop and the
// production pipeline it moves through.
//
// The package includes:
//   - Order: the aggregate root holding identity, ticket, client and catalog
//     references, price, notes and the optional workstation assignment
//   - Status: the five production stages, from "En attente de validation" to "Livré"
//   - TransitionPolicy: whether status changes may jump around the pipeline
//     (Permissive, the shop's behaviour) or must advance one stage at a time (Strict)
//
// Key business rules:
//   - Orders are never deleted; the registry only grows or mutates in place
//   - id and ticket id are fixed at creation
//   - Workstation assignment is an unconditional overwrite
//   - A price, when set, is never negative
package order
