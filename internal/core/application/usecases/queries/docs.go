// Package queries implements the read side of the ordering workflow.
//
// Query handlers bypass the domain model and read the store directly with
// raw SQL, returning flat response structs shaped for their callers. Writes
// never happen here; anything that mutates an order goes through commands.
package queries
