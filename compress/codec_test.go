package compress

import (
	"encoding/binary"
	"testing"

	"github.com/samholt/fastenc/fastcodec"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/stopbit"
	"github.com/stretchr/testify/require"
)

// captureAccessor is a minimal fastcodec.Accessor over an in-memory slice
// of flat field maps, just enough to drive a small FAST capture for the
// round-trip tests below.
type captureAccessor struct {
	messages []map[string]any
	idx      int
	fields   map[string]any
}

func newCaptureAccessor(messages []map[string]any) *captureAccessor {
	return &captureAccessor{messages: messages, idx: -1}
}

func (a *captureAccessor) PickTemplate() (uint32, bool) {
	a.idx++
	if a.idx >= len(a.messages) {
		return 0, false
	}
	a.fields = a.messages[a.idx]

	return 1, true
}

func (a *captureAccessor) IsPresent(identity fastcodec.FieldIdentity) bool {
	_, ok := a.fields[identity.Name]

	return ok
}

func (a *captureAccessor) GetUnsignedInteger(identity fastcodec.FieldIdentity) (bool, uint64, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, 0, nil
	}

	return true, v.(uint64), nil
}

func (a *captureAccessor) GetSignedInteger(fastcodec.FieldIdentity) (bool, int64, error) {
	return false, 0, nil
}

func (a *captureAccessor) GetDecimal(fastcodec.FieldIdentity) (bool, stopbit.Decimal, error) {
	return false, stopbit.Decimal{}, nil
}

func (a *captureAccessor) GetString(identity fastcodec.FieldIdentity) (bool, string, error) {
	v, ok := a.fields[identity.Name]
	if !ok {
		return false, "", nil
	}

	return true, v.(string), nil
}

func (a *captureAccessor) GetByteVector(fastcodec.FieldIdentity) (bool, []byte, error) {
	return false, nil, nil
}

func (a *captureAccessor) GetGroup(fastcodec.FieldIdentity) (fastcodec.Accessor, bool) {
	return nil, false
}

func (a *captureAccessor) GetSequenceLength(fastcodec.FieldIdentity) (int, bool) {
	return 0, false
}

func (a *captureAccessor) GetSequenceEntry(fastcodec.FieldIdentity, int) (fastcodec.Accessor, bool) {
	return nil, false
}

func (a *captureAccessor) EndGroup(fastcodec.FieldIdentity) {}

func (a *captureAccessor) EndSequenceEntry(fastcodec.FieldIdentity, int) {}

func (a *captureAccessor) EndSequence(fastcodec.FieldIdentity) {}

// buildCapturePayload encodes a handful of FAST messages and frames each
// with a 4-byte big-endian length prefix, mirroring cmd/fastcapture's
// encodeCapture so the compression round-trip exercises a realistic
// capture payload rather than synthetic benchmark fixtures.
func buildCapturePayload(t *testing.T) []byte {
	t.Helper()

	price := fastcodec.NewUintField(fastcodec.FieldIdentity{Name: "price"}, format.OperatorCopy, format.TypeUint32, true, false, 0)
	symbol := fastcodec.NewStringField(fastcodec.FieldIdentity{Name: "symbol"}, format.OperatorCopy, false, true, false, "")
	body := &fastcodec.SegmentBody{PmapBitCount: 3, Instructions: []fastcodec.FieldInstruction{price, symbol}}

	reg := fastcodec.NewTemplateRegistry()
	require.NoError(t, reg.Add(&fastcodec.Template{ID: 1, Body: body}))

	enc, err := fastcodec.NewEncoder(reg)
	require.NoError(t, err)

	dest := fastcodec.NewDataDestination()
	accessor := newCaptureAccessor([]map[string]any{
		{"price": uint64(1000), "symbol": "IBM"},
		{"price": uint64(1000), "symbol": "IBM"},
		{"price": uint64(1250), "symbol": "MSFT"},
	})

	var payload []byte
	var frame [4]byte
	onMessage := func(msg []byte) error {
		binary.BigEndian.PutUint32(frame[:], uint32(len(msg)))
		payload = append(payload, frame[:]...)
		payload = append(payload, msg...)

		return nil
	}

	require.NoError(t, enc.EncodeMessages(dest, accessor, onMessage))
	require.NotEmpty(t, payload)

	return payload
}

// TestCodec_RoundTripsCapturePayload round-trips an encoded FAST capture
// payload through every built-in format.CompressionType.
func TestCodec_RoundTripsCapturePayload(t *testing.T) {
	payload := buildCapturePayload(t)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

// TestGetCodec_UnsupportedType rejects a compression type with no built-in codec.
func TestGetCodec_UnsupportedType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}
