// Package item contains the Item aggregate: a priced, stock-tracked catalog
// entry. The on-hand amount is the invariant the fulfillment flow protects —
// it is pre-checked before every decrement and never allowed to go negative.
package item
