// Package order contains the Order aggregate root with its value objects,
// entities, lifecycle state machine, and domain events.
package order
