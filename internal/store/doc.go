// Package store declares the persistence interfaces and sentinel errors
// shared by all storage backends, plus the transaction helper used to
// group multi-step mutations.
package store
