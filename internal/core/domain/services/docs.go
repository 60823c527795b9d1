// Package services contains stateless domain services coordinating the
// order aggregate with the restaurant read model and producing domain
// events.
package services
