package input

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyStatePressRelease(t *testing.T) {
	ks := NewKeyState()
	require.False(t, ks.Held("a"))

	ks.Press("a")
	require.True(t, ks.Held("a"))
	require.False(t, ks.Held("s"))

	ks.Release("a")
	require.False(t, ks.Held("a"))

	// releasing a key that is not held is fine
	ks.Release("s")
}

func TestKeyStatePressFor(t *testing.T) {
	now := time.Unix(1000, 0)
	ks := NewKeyState()
	ks.now = func() time.Time { return now }

	ks.PressFor("ArrowLeft", 100*time.Millisecond)
	require.True(t, ks.Held("ArrowLeft"))

	now = now.Add(99 * time.Millisecond)
	require.True(t, ks.Held("ArrowLeft"))

	// a repeat extends the hold
	ks.PressFor("ArrowLeft", 100*time.Millisecond)
	now = now.Add(50 * time.Millisecond)
	require.True(t, ks.Held("ArrowLeft"))

	now = now.Add(50 * time.Millisecond)
	require.False(t, ks.Held("ArrowLeft"))
}

func TestKeyStateKeys(t *testing.T) {
	now := time.Unix(1000, 0)
	ks := NewKeyState()
	ks.now = func() time.Time { return now }
	require.Nil(t, ks.Keys())

	ks.Press("s")
	ks.Press("a")
	ks.PressFor("d", 10*time.Millisecond)
	require.Equal(t, []string{"a", "d", "s"}, ks.Keys())

	now = now.Add(10 * time.Millisecond)
	ks.Release("s")
	require.Equal(t, []string{"a"}, ks.Keys())
}

func TestKeyStateReset(t *testing.T) {
	ks := NewKeyState()
	ks.Press("a")
	ks.PressFor("s", time.Hour)
	ks.Reset()
	require.False(t, ks.Held("a"))
	require.False(t, ks.Held("s"))
}

func TestKeyStateConcurrent(t *testing.T) {
	ks := NewKeyState()
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ks.Press("a")
				ks.Held("a")
				ks.Release("a")
			}
		}()
	}
	wg.Wait()
	require.False(t, ks.Held("a"))
}
