// Package format defines the small, allocation-free value types shared across
// the codec: field identity, operator and primitive-type tags, dictionary
// scope, and the compression tag used by the capture file format.
package format

// Operator identifies the FAST field operator governing how a field's
// presence and value are carried across messages.
type Operator uint8

const (
	OperatorNone      Operator = 0x1 // OperatorNone carries no dictionary state; value must always be present on the wire.
	OperatorConstant  Operator = 0x2 // OperatorConstant never appears on the wire; its value is fixed by the template.
	OperatorDefault   Operator = 0x3 // OperatorDefault is present on the wire only when it differs from the template default.
	OperatorCopy      Operator = 0x4 // OperatorCopy is present on the wire only when it differs from the dictionary.
	OperatorIncrement Operator = 0x5 // OperatorIncrement is present on the wire only when it differs from dictionary+1.
	OperatorDelta     Operator = 0x6 // OperatorDelta is always present, carrying the signed delta from the dictionary.
	OperatorTail      Operator = 0x7 // OperatorTail is present only when its trailing bytes differ from the dictionary.
)

func (o Operator) String() string {
	switch o {
	case OperatorNone:
		return "none"
	case OperatorConstant:
		return "constant"
	case OperatorDefault:
		return "default"
	case OperatorCopy:
		return "copy"
	case OperatorIncrement:
		return "increment"
	case OperatorDelta:
		return "delta"
	case OperatorTail:
		return "tail"
	default:
		return "unknown"
	}
}

// UsesDictionary reports whether the operator reads or mutates dictionary
// state. OperatorNone and OperatorConstant never touch the dictionary.
func (o Operator) UsesDictionary() bool {
	switch o {
	case OperatorCopy, OperatorIncrement, OperatorDelta, OperatorTail:
		return true
	default:
		return false
	}
}

// PrimitiveType identifies the wire representation of a field's value.
type PrimitiveType uint8

const (
	TypeUint32   PrimitiveType = 0x1
	TypeUint64   PrimitiveType = 0x2
	TypeInt32    PrimitiveType = 0x3
	TypeInt64    PrimitiveType = 0x4
	TypeDecimal  PrimitiveType = 0x5
	TypeASCII    PrimitiveType = 0x6
	TypeUnicode  PrimitiveType = 0x7
	TypeByteVec  PrimitiveType = 0x8
	TypeGroup    PrimitiveType = 0x9
	TypeSequence PrimitiveType = 0xa
)

func (p PrimitiveType) String() string {
	switch p {
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeDecimal:
		return "decimal"
	case TypeASCII:
		return "ascii"
	case TypeUnicode:
		return "unicode"
	case TypeByteVec:
		return "byteVector"
	case TypeGroup:
		return "group"
	case TypeSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// DictionaryScope identifies which dictionary namespace a copy/increment/
// delta/tail field's state lives in. FAST templates may declare a scope
// narrower than "global" so that two fields of the same name in unrelated
// templates do not share state.
type DictionaryScope uint8

const (
	ScopeGlobal   DictionaryScope = 0x1
	ScopeTemplate DictionaryScope = 0x2
	ScopeType     DictionaryScope = 0x3
)

func (s DictionaryScope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeTemplate:
		return "template"
	case ScopeType:
		return "type"
	default:
		return "unknown"
	}
}

// FieldIdentity names a field for dictionary lookups and PMAP bookkeeping.
// Two fields with the same Name, Namespace and Scope share dictionary state.
type FieldIdentity struct {
	Name      string
	Namespace string
	Scope     DictionaryScope
}

// Key renders the identity as a string suitable for hashing. Namespace and
// Name are joined by a separator (NUL) that cannot occur in either, so no two
// distinct (namespace, name) pairs collide before hashing.
func (f FieldIdentity) Key() string {
	return f.Namespace + "\x00" + f.Name + "\x00" + f.Scope.String()
}

// CompressionType selects the general-purpose compression algorithm applied
// to a capture file payload. It does not affect the FAST wire format itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
