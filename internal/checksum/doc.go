// Package checksum provides content hashing for split output.
//
// Raw digests fingerprint rendered trees byte-for-byte: the determinism
// guarantee of the splitter is "same schema in, same digest out", and both
// verbose logging and the test suite lean on it.
//
// Normalized digests give SQL statements a formatting-independent identity
// (comments stripped, lowercased, whitespace collapsed), which the tests
// use to check that the split output is a set-equal rewrite of the input's
// recognized statements.
package checksum
