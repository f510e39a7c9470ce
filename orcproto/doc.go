// Package orcproto decodes the handful of protobuf messages that make up
// an ORC file's metadata: PostScript, Footer, Metadata and StripeFooter,
// along with the nested Type, StripeInformation, Stream and ColumnEncoding
// messages they carry.
//
// There is no generated Go code here and no .proto/protoc step: ORC's
// schema is small and stable enough that each message is decoded by hand
// off protowire.Number/protowire.Type tags, reading only the fields this
// core cares about and skipping the rest. A real protobuf runtime (proto
// reflection, descriptors, a generated struct tree) is assumed available
// upstream for anyone who needs the rest of the schema; this package only
// needs the fields the read path actually consumes.
package orcproto
