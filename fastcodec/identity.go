package fastcodec

import "github.com/samholt/fastenc/format"

// FieldIdentity names a field for dictionary lookups and PMAP bookkeeping.
// It is an alias of format.FieldIdentity so callers outside this package
// never need to import format directly for the common case.
type FieldIdentity = format.FieldIdentity

// Operator re-exports format.Operator for convenience within this package's API.
type Operator = format.Operator

// PrimitiveType re-exports format.PrimitiveType.
type PrimitiveType = format.PrimitiveType

// DictionaryScope re-exports format.DictionaryScope.
type DictionaryScope = format.DictionaryScope

// pmapMessageIdentity and pmapGroupIdentity are the synthetic identities used
// when an Observer is notified about a presence map being written, matching
// the FieldIdentity shape used everywhere else so a single Observer can log
// both kinds of writes. Scope is nominal here; a PMAP never touches the
// dictionary.
var (
	pmapMessageIdentity = FieldIdentity{Name: "PMAP", Namespace: "message", Scope: format.ScopeTemplate}
	pmapGroupIdentity   = FieldIdentity{Name: "PMAP", Namespace: "group", Scope: format.ScopeTemplate}
)
