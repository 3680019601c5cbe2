package fastcodec

import (
	"testing"

	"github.com/samholt/fastenc/errs"
	"github.com/stretchr/testify/require"
)

func TestDataDestination_BuffersEmitInCreationOrder(t *testing.T) {
	d := NewDataDestination()
	require.NoError(t, d.StartMessage(1))

	header := d.StartBuffer()
	body := d.StartBuffer()
	require.Equal(t, body, d.Current())

	require.NoError(t, d.Write([]byte{0x02, 0x03}))

	require.NoError(t, d.SelectBuffer(header))
	require.NoError(t, d.Write([]byte{0x01}))
	require.NoError(t, d.SelectBuffer(body))
	require.NoError(t, d.Write([]byte{0x04}))

	out, err := d.EndMessage()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, out)
}

func TestDataDestination_SelectInvalidHandle(t *testing.T) {
	d := NewDataDestination()
	require.NoError(t, d.StartMessage(1))
	d.StartBuffer()

	err := d.SelectBuffer(BufferHandle(99))
	require.ErrorIs(t, err, errs.ErrInvalidBufferHandle)
}

func TestDataDestination_WriteWithoutBufferFails(t *testing.T) {
	d := NewDataDestination()
	require.NoError(t, d.StartMessage(1))

	err := d.Write([]byte{0x01})
	require.ErrorIs(t, err, errs.ErrNoCurrentBuffer)
}

func TestDataDestination_DoubleStartMessageFails(t *testing.T) {
	d := NewDataDestination()
	require.NoError(t, d.StartMessage(1))

	err := d.StartMessage(2)
	require.ErrorIs(t, err, errs.ErrMessageAlreadyStarted)
}

func TestDataDestination_EndMessageWithoutStartFails(t *testing.T) {
	d := NewDataDestination()

	_, err := d.EndMessage()
	require.ErrorIs(t, err, errs.ErrNoMessageStarted)
}

func TestDataDestination_ObserverNotified(t *testing.T) {
	var templates []uint32
	var started, ended []FieldIdentity
	d := NewDataDestination()
	d.SetObserver(fakeObserver{
		message: func(id uint32) { templates = append(templates, id) },
		start:   func(id FieldIdentity) { started = append(started, id) },
		end:     func(id FieldIdentity) { ended = append(ended, id) },
	})

	require.NoError(t, d.StartMessage(7))
	id := FieldIdentity{Name: "price"}
	d.StartField(id)
	d.EndField(id)

	require.Equal(t, []uint32{7}, templates)
	require.Equal(t, []FieldIdentity{id}, started)
	require.Equal(t, []FieldIdentity{id}, ended)
}

type fakeObserver struct {
	message func(uint32)
	start   func(FieldIdentity)
	end     func(FieldIdentity)
}

func (f fakeObserver) StartMessage(id uint32)      { f.message(id) }
func (f fakeObserver) StartField(id FieldIdentity) { f.start(id) }
func (f fakeObserver) EndField(id FieldIdentity)   { f.end(id) }
