package fastcodec

// FieldInstruction is one entry in a Template's or group's instruction
// list: it knows how to read a single field from an Accessor, decide
// whether it needs a PresenceMap bit, write its wire bytes, and update its
// operator's dictionary state. Each implementation decides for itself, per
// operator, whether a bit is spent: default/copy/increment/tail do,
// none/delta are unconditional, constant never appears on the wire at all.
type FieldInstruction interface {
	Identity() FieldIdentity
	Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error
}
