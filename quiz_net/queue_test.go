package quiz_net

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgQueue_DrainPreservesOrder(t *testing.T) {
	q := NewMsgQueue()
	assert.Nil(t, q.Drain())

	q.Push("a")
	q.Push("b")
	q.Push("c")
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, []string{"a", "b", "c"}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestMsgQueue_ConcurrentProducerKeepsFIFO(t *testing.T) {
	q := NewMsgQueue()
	const n = 2000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			q.Push(fmt.Sprintf("chunk-%d", i))
		}
	}()

	got := make([]string, 0, n)
	for len(got) < n {
		got = append(got, q.Drain()...)
	}
	wg.Wait()

	require.Len(t, got, n)
	for i, chunk := range got {
		assert.Equal(t, fmt.Sprintf("chunk-%d", i), chunk)
	}
}
