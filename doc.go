// Package orc decodes the read path of ORC (Optimized Row Columnar) files:
// given a seekable byte source, it locates stripes and yields typed column
// values (booleans, integers, floats, strings). Streams are decompressed
// one block at a time; each typed accessor returns one column's values of
// a stripe as a slice.
//
// Open reads a file's tail-first metadata once; Reader.Stripe locates one
// stripe's footer and hands back a Stripe, whose typed accessors
// (Booleans, Int64s, Float32s/Float64s, Strings) decode a column at a
// time through the column and value packages. Writing, schema evolution,
// predicate pushdown, row-index navigation, nested types, timestamps and
// decimals are out of scope; so is any compression codec beyond None and
// Zlib.
package orc
