// Package query turns loosely typed request parameters into SurrealQL.
//
// Compile builds a WHERE predicate from a Schema allow-list: text fields
// become case-insensitive substring matches, boolean fields equality, and
// each date axis either an exact match or an inclusive range. Resolver
// turns skip/limit/sortBy/sort into a Page, and Sanitize prepares partial
// update payloads.
//
// All parsing fails closed with ErrInvalidArgument.
package query
