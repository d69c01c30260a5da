// Package services provides domain services that span several aggregates of
// the shop.
//
// The package includes:
//   - OrderNotifier: decides which order events reach the manager's
//     notification log and words the messages
//
// Only three events are announced: an order reaching "En finition" or
// "Prêt à livrer", an order being assigned to a workstation, and a client
// placing an order from the catalog.
package services
