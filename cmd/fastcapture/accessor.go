package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/samholt/fastenc/fastcodec"
	"github.com/samholt/fastenc/stopbit"
)

// rawMessage is one entry of the input message JSON array: a template id
// plus a flat map of field name to raw JSON value. Groups are nested
// objects; sequences are nested arrays of objects. Field lookup is by name
// only: the namespace and dictionary scope that a template instruction may
// declare are ignored by this capture format.
type rawMessage struct {
	TemplateID uint32                     `json:"template_id"`
	Fields     map[string]json.RawMessage `json:"fields"`
}

type decimalJSON struct {
	Exponent int64 `json:"exponent"`
	Mantissa int64 `json:"mantissa"`
}

// jsonAccessor implements fastcodec.Accessor over a flat JSON field map. A
// single instance plays two roles depending on construction: the top-level
// accessor driving PickTemplate across a whole capture run, or a scoped
// accessor for one group or sequence entry's fields.
type jsonAccessor struct {
	messages []rawMessage
	idx      int

	fields map[string]json.RawMessage
	seqs   map[string][]map[string]json.RawMessage
}

func newMessageStreamAccessor(messages []rawMessage) *jsonAccessor {
	return &jsonAccessor{messages: messages, idx: -1}
}

func newFieldAccessor(fields map[string]json.RawMessage) *jsonAccessor {
	return &jsonAccessor{fields: fields}
}

func (a *jsonAccessor) PickTemplate() (templateID uint32, ok bool) {
	a.idx++
	if a.idx >= len(a.messages) {
		return 0, false
	}
	a.fields = a.messages[a.idx].Fields
	a.seqs = nil

	return a.messages[a.idx].TemplateID, true
}

func (a *jsonAccessor) IsPresent(identity fastcodec.FieldIdentity) bool {
	_, ok := a.fields[identity.Name]

	return ok
}

func (a *jsonAccessor) GetUnsignedInteger(identity fastcodec.FieldIdentity) (present bool, value uint64, err error) {
	raw, ok := a.fields[identity.Name]
	if !ok {
		return false, 0, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, 0, fmt.Errorf("field %q: %w", identity.Name, err)
	}

	return true, value, nil
}

func (a *jsonAccessor) GetSignedInteger(identity fastcodec.FieldIdentity) (present bool, value int64, err error) {
	raw, ok := a.fields[identity.Name]
	if !ok {
		return false, 0, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, 0, fmt.Errorf("field %q: %w", identity.Name, err)
	}

	return true, value, nil
}

func (a *jsonAccessor) GetDecimal(identity fastcodec.FieldIdentity) (present bool, value stopbit.Decimal, err error) {
	raw, ok := a.fields[identity.Name]
	if !ok {
		return false, stopbit.Decimal{}, nil
	}
	var d decimalJSON
	if err := json.Unmarshal(raw, &d); err != nil {
		return false, stopbit.Decimal{}, fmt.Errorf("field %q: %w", identity.Name, err)
	}

	return true, stopbit.Decimal{Exponent: d.Exponent, Mantissa: d.Mantissa}, nil
}

func (a *jsonAccessor) GetString(identity fastcodec.FieldIdentity) (present bool, value string, err error) {
	raw, ok := a.fields[identity.Name]
	if !ok {
		return false, "", nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, "", fmt.Errorf("field %q: %w", identity.Name, err)
	}

	return true, value, nil
}

func (a *jsonAccessor) GetByteVector(identity fastcodec.FieldIdentity) (present bool, value []byte, err error) {
	raw, ok := a.fields[identity.Name]
	if !ok {
		return false, nil, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return false, nil, fmt.Errorf("field %q: %w", identity.Name, err)
	}
	value, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, nil, fmt.Errorf("field %q: base64: %w", identity.Name, err)
	}

	return true, value, nil
}

func (a *jsonAccessor) GetGroup(identity fastcodec.FieldIdentity) (group fastcodec.Accessor, ok bool) {
	raw, present := a.fields[identity.Name]
	if !present {
		return nil, false
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, false
	}

	return newFieldAccessor(nested), true
}

func (a *jsonAccessor) GetSequenceLength(identity fastcodec.FieldIdentity) (length int, ok bool) {
	entries, ok := a.sequenceEntries(identity)
	if !ok {
		return 0, false
	}

	return len(entries), true
}

func (a *jsonAccessor) GetSequenceEntry(identity fastcodec.FieldIdentity, index int) (entry fastcodec.Accessor, ok bool) {
	entries, ok := a.sequenceEntries(identity)
	if !ok || index < 0 || index >= len(entries) {
		return nil, false
	}

	return newFieldAccessor(entries[index]), true
}

func (a *jsonAccessor) sequenceEntries(identity fastcodec.FieldIdentity) ([]map[string]json.RawMessage, bool) {
	if a.seqs == nil {
		a.seqs = make(map[string][]map[string]json.RawMessage)
	}
	if cached, ok := a.seqs[identity.Name]; ok {
		return cached, true
	}

	raw, present := a.fields[identity.Name]
	if !present {
		return nil, false
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	a.seqs[identity.Name] = entries

	return entries, true
}

func (a *jsonAccessor) EndGroup(identity fastcodec.FieldIdentity) {}

func (a *jsonAccessor) EndSequenceEntry(identity fastcodec.FieldIdentity, _ int) {}

func (a *jsonAccessor) EndSequence(identity fastcodec.FieldIdentity) {}
