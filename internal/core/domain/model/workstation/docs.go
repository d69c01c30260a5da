// Package workstation models the shop's physical posts (sewing machines,
// embroidery bench...) and the access codes staff use to open a post's
// dashboard.
//
// The package includes:
//   - Workstation: an entity with a display name and one access code
//   - AccessCode: the bearer credential "POSTE-XXXX"
//
// Access codes are compared in constant time and are unique across posts.
package workstation
