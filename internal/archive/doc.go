// Package archive serializes split trees into byte-deterministic tar
// archives or plain directories, and reads archives back for comparison.
//
// Determinism contract: entries are sorted byte-wise by path, only regular
// file entries are written, and all metadata (modification time, mode,
// ownership) is pinned to constants. Two runs over equivalent schemas
// therefore produce byte-identical archives, which is what allows the
// comparator to diff archives without filtering volatile fields.
package archive
