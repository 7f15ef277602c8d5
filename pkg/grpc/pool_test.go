package grpc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_GetConnectionReusesTarget(t *testing.T) {
	p := NewPool(WithContentSubtype("json"))
	defer p.Close()

	var wg sync.WaitGroup
	conns := make(chan any, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := p.GetConnection("localhost:50051")
			require.NoError(t, err)
			conns <- conn
		}()
	}
	wg.Wait()
	close(conns)

	first := <-conns
	for c := range conns {
		assert.Same(t, first, c)
	}

	other, err := p.GetConnection("localhost:50052")
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestPool_ReplacesClosedConnection(t *testing.T) {
	p := NewPool()
	defer p.Close()

	conn, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	again, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.NotSame(t, conn, again)
}

func TestPool_Close(t *testing.T) {
	p := NewPool()
	_, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	_, ok := p.load("localhost:50051")
	assert.False(t, ok)
}
