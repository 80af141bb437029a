package state

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisSet(t *testing.T) *RedisSet {
	t.Helper()

	mr := miniredis.RunT(t)
	s, err := NewRedisSet(mr.Host(), mr.Port())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisSetContract(t *testing.T) {
	runNotifiedSetContract(t, newTestRedisSet(t))
}

func TestRedisSetSurvivesNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first, err := NewRedisSet(mr.Host(), mr.Port())
	require.NoError(t, err)
	require.NoError(t, first.Add(ctx, "John Doe_2025-03-14_Bedtime"))
	require.NoError(t, first.Close())

	// A fresh client against the same server still sees the key: the set
	// outlives any one process, unlike the in-memory implementation.
	second, err := NewRedisSet(mr.Host(), mr.Port())
	require.NoError(t, err)
	defer second.Close()

	ok, err := second.Contains(ctx, "John Doe_2025-03-14_Bedtime")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRedisSetUnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addrHost, addrPort := mr.Host(), mr.Port()
	mr.Close()

	_, err := NewRedisSet(addrHost, addrPort)
	assert.Error(t, err)
}
