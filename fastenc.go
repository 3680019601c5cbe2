// Package fastenc is a small facade over the fastcodec encoder core,
// the registry JSON template loader, and the stopbit primitive codec, so
// that a straightforward encode-one-stream use case needs only this one
// import.
//
// Callers who need the full surface (custom FieldInstruction variants,
// direct DataDestination manipulation, EncoderContext resets mid-session)
// should import github.com/samholt/fastenc/fastcodec directly.
package fastenc

import (
	"github.com/samholt/fastenc/fastcodec"
	"github.com/samholt/fastenc/registry"
	"github.com/samholt/fastenc/stopbit"
)

// Re-exported types so a caller implementing Accessor, or constructing
// FieldIdentity values for ad hoc templates, does not need a second import.
type (
	Accessor         = fastcodec.Accessor
	FieldIdentity    = fastcodec.FieldIdentity
	TemplateRegistry = fastcodec.TemplateRegistry
	Encoder          = fastcodec.Encoder
	EncoderOption    = fastcodec.EncoderOption
	DataDestination  = fastcodec.DataDestination
	Decimal          = stopbit.Decimal
)

// LoadTemplateRegistryJSON builds a TemplateRegistry from the minimal JSON
// template schema documented in the registry package.
func LoadTemplateRegistryJSON(data []byte) (*TemplateRegistry, error) {
	return registry.LoadJSON(data)
}

// NewEncoder creates an Encoder bound to registry.
func NewEncoder(reg *TemplateRegistry, opts ...EncoderOption) (*Encoder, error) {
	return fastcodec.NewEncoder(reg, opts...)
}

// NewDataDestination creates an empty DataDestination ready for one
// Encoder.EncodeMessage or Encoder.EncodeMessages call.
func NewDataDestination() *DataDestination {
	return fastcodec.NewDataDestination()
}
