package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/theory"
)

func TestWriteWAV(t *testing.T) {
	buf := Render([]theory.Pitch{theory.FromMIDI(60), theory.FromMIDI(64)}, 100, 8000)
	path := filepath.Join(t.TempDir(), "chord.wav")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, buf, 16))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	dec := wav.NewDecoder(in)
	require.True(t, dec.IsValidFile())
	pcm, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint32(8000), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)
	require.Len(t, pcm.Data, 800)

	amp := 0.3
	limit := int(amp*32767) + 1
	for i, v := range pcm.Data {
		require.LessOrEqual(t, v, limit, "sample %d", i)
		require.GreaterOrEqual(t, v, -limit, "sample %d", i)
	}
}

func TestWriteWAVClipsAndRejectsDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	loud := contracts.SampleBuffer{Samples: []float32{2, -2, 0.5}, SampleRate: 8000, Channels: 1}
	err = WriteWAV(f, loud, 12)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)

	require.NoError(t, WriteWAV(f, loud, 16))
	require.NoError(t, f.Sync())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()
	pcm, err := wav.NewDecoder(in).FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, []int{32767, -32767, 16384}, pcm.Data)
}
