// Package portable encodes papers to and from their storage and transfer form.
//
// The representation is a self-describing JSON envelope carrying a format
// marker and version ahead of the document body. Decode validates the envelope
// and the structural invariants of the document (non-empty section list,
// unique ids, known locale) and fails with ErrMalformed rather than coercing a
// broken document into a partially valid one. Encode followed by Decode
// round-trips every field, including ordering and locale.
package portable
