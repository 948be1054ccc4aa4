// Package services provides domain services that operate on the order domain
// without naturally belonging to a single aggregate root.
//
// The package includes:
//   - StatusTimeline: projection of an order's status history into display-ready timeline steps
//
// Domain services here are stateless: free functions over explicit parameters,
// with their lookup tables modeled as data rather than code branches.
package services
