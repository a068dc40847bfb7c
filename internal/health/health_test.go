package health

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_StartsUnknown(t *testing.T) {
	require.Equal(t, StateUnknown, NewTracker().Current())
}

func TestTracker_Transitions(t *testing.T) {
	tr := NewTracker()

	tr.RecordFailure()
	require.Equal(t, StateDown, tr.Current())

	// A single success flips down back up, no hysteresis.
	tr.RecordSuccess()
	require.Equal(t, StateUp, tr.Current())

	tr.RecordSuccess()
	require.Equal(t, StateUp, tr.Current())

	tr.RecordFailure()
	require.Equal(t, StateDown, tr.Current())

	tr.RecordFailure()
	require.Equal(t, StateDown, tr.Current())
}

func TestTracker_ResetReturnsToUnknown(t *testing.T) {
	tr := NewTracker()
	tr.RecordFailure()
	tr.Reset()
	require.Equal(t, StateUnknown, tr.Current())

	tr.RecordSuccess()
	tr.Reset()
	require.Equal(t, StateUnknown, tr.Current())
}

func TestTracker_ConcurrentUpdates(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				tr.RecordSuccess()
			} else {
				tr.RecordFailure()
			}
		}(i)
	}
	wg.Wait()
	got := tr.Current()
	require.Contains(t, []State{StateUp, StateDown}, got)
}
