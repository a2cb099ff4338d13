// Package filesystem abstracts file access behind a small Provider
// interface so the directory writer and fixture-driven tests can run
// against either the OS filesystem or an in-memory one.
package filesystem
