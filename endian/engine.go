// Package endian provides the byte order engine float decoding reads
// through.
//
// ORC float and protobuf payloads are always little-endian, so
// GetLittleEndianEngine() is the only engine any reader in this module
// constructs:
//
//	import "github.com/colbeam/orc/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	value := engine.Uint64(buf)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, satisfied by binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
