// Package kernel contains shared value objects used across all domain
// aggregates: identifiers and money amounts.
//
// Everything in this package is immutable and validated at construction.
// The zero value of UUID is invalid and fails Validate; the zero value of
// Money is a valid zero amount.
package kernel
