// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is priced once, at build time, from line snapshots and the tax
// rate then in force. Afterwards only the status moves, and only forward:
// Pending -> Fulfilled -> PickedUp. The aggregate enforces who may drive
// each transition (staff fulfill, the owning customer picks up), while
// stock reservation for fulfillment lives in the domain services layer.
package order
