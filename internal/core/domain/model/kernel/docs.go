// Package kernel contains shared value objects used across the domain model.
// These types form the building blocks for aggregates and entities and enforce
// their own invariants through validated constructors.
package kernel
