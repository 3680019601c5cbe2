package fastcodec

import (
	"fmt"

	"github.com/samholt/fastenc/stopbit"
)

// testMessage is one entry of an in-memory accessor's message stream: a
// template id plus a flat map of field name to Go value (uint64, int64,
// stopbit.Decimal, string, []byte, map[string]any for a group, or
// []map[string]any for a sequence).
type testMessage struct {
	templateID uint32
	fields     map[string]any
}

// testAccessor is a minimal in-memory Accessor used by the encoder's
// scenario tests; it never touches JSON.
type testAccessor struct {
	messages []testMessage
	idx      int
	fields   map[string]any
}

func newTestAccessor(messages []testMessage) *testAccessor {
	return &testAccessor{messages: messages, idx: -1}
}

func newTestFieldAccessor(fields map[string]any) *testAccessor {
	return &testAccessor{fields: fields}
}

func (a *testAccessor) PickTemplate() (uint32, bool) {
	a.idx++
	if a.idx >= len(a.messages) {
		return 0, false
	}
	a.fields = a.messages[a.idx].fields

	return a.messages[a.idx].templateID, true
}

func (a *testAccessor) IsPresent(identity FieldIdentity) bool {
	_, ok := a.fields[identity.Name]

	return ok
}

func (a *testAccessor) GetUnsignedInteger(identity FieldIdentity) (bool, uint64, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, 0, nil
	}
	u, ok := v.(uint64)
	if !ok {
		return false, 0, fmt.Errorf("field %q: not a uint64: %v", identity.Name, v)
	}

	return true, u, nil
}

func (a *testAccessor) GetSignedInteger(identity FieldIdentity) (bool, int64, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, 0, nil
	}
	i, ok := v.(int64)
	if !ok {
		return false, 0, fmt.Errorf("field %q: not an int64: %v", identity.Name, v)
	}

	return true, i, nil
}

func (a *testAccessor) GetDecimal(identity FieldIdentity) (bool, stopbit.Decimal, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, stopbit.Decimal{}, nil
	}
	d, ok := v.(stopbit.Decimal)
	if !ok {
		return false, stopbit.Decimal{}, fmt.Errorf("field %q: not a decimal: %v", identity.Name, v)
	}

	return true, d, nil
}

func (a *testAccessor) GetString(identity FieldIdentity) (bool, string, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, "", nil
	}
	s, ok := v.(string)
	if !ok {
		return false, "", fmt.Errorf("field %q: not a string: %v", identity.Name, v)
	}

	return true, s, nil
}

func (a *testAccessor) GetByteVector(identity FieldIdentity) (bool, []byte, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, nil, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return false, nil, fmt.Errorf("field %q: not a byte vector: %v", identity.Name, v)
	}

	return true, b, nil
}

func (a *testAccessor) GetGroup(identity FieldIdentity) (Accessor, bool) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return nil, false
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}

	return newTestFieldAccessor(nested), true
}

func (a *testAccessor) GetSequenceLength(identity FieldIdentity) (int, bool) {
	entries, ok := a.sequenceEntries(identity)
	if !ok {
		return 0, false
	}

	return len(entries), true
}

func (a *testAccessor) GetSequenceEntry(identity FieldIdentity, index int) (Accessor, bool) {
	entries, ok := a.sequenceEntries(identity)
	if !ok || index < 0 || index >= len(entries) {
		return nil, false
	}

	return newTestFieldAccessor(entries[index]), true
}

func (a *testAccessor) sequenceEntries(identity FieldIdentity) ([]map[string]any, bool) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return nil, false
	}
	entries, ok := v.([]map[string]any)

	return entries, ok
}

func (a *testAccessor) EndGroup(identity FieldIdentity) {}

func (a *testAccessor) EndSequenceEntry(identity FieldIdentity, _ int) {}

func (a *testAccessor) EndSequence(identity FieldIdentity) {}
