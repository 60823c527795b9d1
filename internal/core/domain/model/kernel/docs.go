// Package kernel provides the shared value objects of the ordering domain:
// typed entity identifiers and the Money type.
//
// The package includes:
//   - ID: a generic typed identifier with per-entity aliases (OrderID,
//     CustomerID, RestaurantID, TrackingID, ProductID)
//   - Money: an exact-decimal amount used for all pricing
//
// All kernel types are immutable value objects: operations return new values
// and zero values fail validation, so invalid state cannot leak into the
// aggregates built on top of them.
package kernel
