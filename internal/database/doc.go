// Package database provides the store abstraction for the Source API.
//
// The Database interface hides the SurrealDB client so repositories can be
// tested against fakes and the service layer never imports the driver.
//
//   - Query: one result value per statement
//   - QueryOne: first record of the last statement, ErrNotFound when empty
//   - Execute: mutations whose output is not needed
//
// # Transactions
//
// BeginTx returns a batch: statements are buffered and sent as a single
// BEGIN/COMMIT query on Commit. Rollback discards the buffer. The service
// layer does not use transactions for record writes; they exist for
// applying the schema atomically at startup (see ApplySchema).
//
// # Errors
//
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique index violation
//   - ErrConnection: connection failed or was lost
//   - ErrQuery: anything else reported by the store
//
// Use errors.Is to check them.
package database
