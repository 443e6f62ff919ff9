// Package postgres implements the store interfaces on PostgreSQL.
//
// Resources are persisted as JSONB documents in per-resource tables
// (see migrations/), which keeps the CRUD and exploration code generic over
// the resource type. Users are the exception: their table uses plain
// columns so the password hash lives outside the JSON document and
// uniqueness constraints stay ordinary column indexes.
package postgres
