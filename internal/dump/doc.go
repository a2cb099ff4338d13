// Package dump produces a plain-text schema-only dump by running pg_dump
// as a subprocess. The conninfo string is parsed and validated locally
// before the subprocess starts; this package never opens a database
// connection itself.
package dump
