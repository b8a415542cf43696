// Package loading implements the loading-transaction aggregate: the record of
// moving bundles from cutting stock to a sewing line.
//
// State machine:
//
//	PENDING_APPROVAL --approve--> APPROVED --handover--> COMPLETED
//	PENDING_APPROVAL --reject---> (row deleted, bundles released)
//
// COMPLETED is terminal; a completed transaction is never mutated again.
// Rejection is not a stored state.
package loading
