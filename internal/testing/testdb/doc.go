// Package testdb provides test database utilities for the Source API.
//
// # Test Database Setup
//
// Create a test database for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//	}
//
// The connection is configured from TEST_DB_HOST, TEST_DB_PORT,
// TEST_DB_USER and TEST_DB_PASSWORD. When no store answers, the test is
// skipped rather than failed, as it is under -short.
//
// # Schema
//
// migrations/*.surql is applied in one transaction on setup.
//
// # Isolation
//
// Each TestDB gets its own namespace, removed again by Close.
package testdb
