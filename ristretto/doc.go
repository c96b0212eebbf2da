// Package ristretto implements the ristretto255 prime-order group over
// Curve25519 and its scalar field modulo
// l = 2^252 + 27742317777372353535851937790883648493.
//
// Group elements are encoded and decoded here on top of the field arithmetic
// of filippo.io/edwards25519/field. Decoding accepts exactly one 32-byte
// string per element and rejects every other input without panicking.
// Point addition and scalar multiplication are delegated to
// filippo.io/edwards25519, which runs them in constant time.
//
// Arithmetic methods assume their operands came out of DecodePoint,
// DecodeScalar, ReduceScalar or another method of this package. Passing
// values from elsewhere through the types interfaces panics.
package ristretto
