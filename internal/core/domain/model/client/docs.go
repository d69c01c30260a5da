// Package client models the shop's customers and their body measurements
// (in centimetres), which workstations read when cutting a garment.
package client
