package audit

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendAndTail(t *testing.T) {
	l := New()

	l.Append("INFO", "first")
	l.Append("WARN", "second")
	l.Append("INFO", "third")

	entries := l.Tail(0)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)

	two := l.Tail(2)
	require.Len(t, two, 2)
	assert.Equal(t, "third", two[0].Message)
}

func TestLog_Bounded(t *testing.T) {
	l := New()

	for i := 0; i < MaxEntries+10; i++ {
		l.Append("INFO", fmt.Sprintf("entry-%d", i))
	}

	entries := l.Tail(0)
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, fmt.Sprintf("entry-%d", MaxEntries+9), entries[0].Message)
}

func TestLog_ConcurrentAppend(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append("INFO", fmt.Sprintf("entry-%d", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.Tail(0), MaxEntries)
}
