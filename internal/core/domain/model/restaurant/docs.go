// Package restaurant contains the restaurant read model used to validate
// orders: activity flag and confirmed product names and prices.
package restaurant
