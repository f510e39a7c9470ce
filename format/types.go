// Package format defines the wire-level enums shared by the protobuf layer
// (orcproto), the decompressor (compress) and the column reader (column):
// compression kinds, stream kinds, column encodings and type kinds.
//
// Numeric values match the ORC protobuf schema's enum values directly, since
// orcproto decodes them straight off the wire as varints.
package format

type (
	// CompressionKind identifies the compression codec a file (or, in
	// practice, every stream in it) was compressed with.
	CompressionKind uint8

	// StreamKind identifies the role a stream plays within a column.
	StreamKind uint8

	// ColumnEncodingKind identifies how a column's Data stream is encoded.
	ColumnEncodingKind uint8

	// TypeKind identifies the logical type of a schema node.
	TypeKind uint8
)

const (
	CompressionNone   CompressionKind = 0
	CompressionZlib   CompressionKind = 1
	CompressionSnappy CompressionKind = 2
	CompressionLzo    CompressionKind = 3
	CompressionLz4    CompressionKind = 4
	CompressionZstd   CompressionKind = 5
)

func (c CompressionKind) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionSnappy:
		return "Snappy"
	case CompressionLzo:
		return "Lzo"
	case CompressionLz4:
		return "Lz4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

const (
	StreamPresent         StreamKind = 0
	StreamData            StreamKind = 1
	StreamLength          StreamKind = 2
	StreamDictionaryData  StreamKind = 3
	StreamDictionaryCount StreamKind = 4
	StreamSecondary       StreamKind = 5
	StreamRowIndex        StreamKind = 6
	StreamBloomFilter     StreamKind = 7
	StreamBloomFilterUtf8 StreamKind = 8
)

func (k StreamKind) String() string {
	switch k {
	case StreamPresent:
		return "Present"
	case StreamData:
		return "Data"
	case StreamLength:
		return "Length"
	case StreamDictionaryData:
		return "DictionaryData"
	case StreamDictionaryCount:
		return "DictionaryCount"
	case StreamSecondary:
		return "Secondary"
	case StreamRowIndex:
		return "RowIndex"
	case StreamBloomFilter:
		return "BloomFilter"
	case StreamBloomFilterUtf8:
		return "BloomFilterUtf8"
	default:
		return "Unknown"
	}
}

const (
	EncodingDirect        ColumnEncodingKind = 0
	EncodingDictionary    ColumnEncodingKind = 1
	EncodingDirectV2      ColumnEncodingKind = 2
	EncodingDictionaryV2  ColumnEncodingKind = 3
)

func (e ColumnEncodingKind) String() string {
	switch e {
	case EncodingDirect:
		return "Direct"
	case EncodingDictionary:
		return "Dictionary"
	case EncodingDirectV2:
		return "DirectV2"
	case EncodingDictionaryV2:
		return "DictionaryV2"
	default:
		return "Unknown"
	}
}

// IsDictionary reports whether e is one of the two dictionary encodings.
func (e ColumnEncodingKind) IsDictionary() bool {
	return e == EncodingDictionary || e == EncodingDictionaryV2
}

const (
	TypeBoolean   TypeKind = 0
	TypeByte      TypeKind = 1
	TypeShort     TypeKind = 2
	TypeInt       TypeKind = 3
	TypeLong      TypeKind = 4
	TypeFloat     TypeKind = 5
	TypeDouble    TypeKind = 6
	TypeString    TypeKind = 7
	TypeBinary    TypeKind = 8
	TypeTimestamp TypeKind = 9
	TypeList      TypeKind = 10
	TypeMap       TypeKind = 11
	TypeStruct    TypeKind = 12
	TypeUnion     TypeKind = 13
	TypeDecimal   TypeKind = 14
	TypeDate      TypeKind = 15
	TypeVarchar   TypeKind = 16
	TypeChar      TypeKind = 17
)

func (t TypeKind) String() string {
	switch t {
	case TypeBoolean:
		return "Boolean"
	case TypeByte:
		return "Byte"
	case TypeShort:
		return "Short"
	case TypeInt:
		return "Int"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeBinary:
		return "Binary"
	case TypeTimestamp:
		return "Timestamp"
	case TypeList:
		return "List"
	case TypeMap:
		return "Map"
	case TypeStruct:
		return "Struct"
	case TypeUnion:
		return "Union"
	case TypeDecimal:
		return "Decimal"
	case TypeDate:
		return "Date"
	case TypeVarchar:
		return "Varchar"
	case TypeChar:
		return "Char"
	default:
		return "Unknown"
	}
}
