package latest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin_SupersedesOlderRequest(t *testing.T) {
	var tr Tracker

	oldCtx, oldTicket := tr.Begin(context.Background(), "client-1")
	newCtx, newTicket := tr.Begin(context.Background(), "client-1")

	select {
	case <-oldCtx.Done():
	default:
		t.Fatal("older request was not cancelled")
	}
	assert.ErrorIs(t, context.Cause(oldCtx), ErrSuperseded)
	assert.False(t, oldTicket.Current())

	assert.NoError(t, newCtx.Err())
	assert.True(t, newTicket.Current())

	oldTicket.Done()
	assert.True(t, newTicket.Current(), "releasing a stale ticket must not touch the newer one")
	assert.Equal(t, 1, tr.Len())

	newTicket.Done()
	assert.Equal(t, 0, tr.Len())
	assert.Error(t, newCtx.Err())
}

func TestBegin_KeysAreIndependent(t *testing.T) {
	var tr Tracker

	aCtx, a := tr.Begin(context.Background(), "a")
	_, b := tr.Begin(context.Background(), "b")

	assert.NoError(t, aCtx.Err())
	assert.True(t, a.Current())
	assert.True(t, b.Current())
	assert.Equal(t, 2, tr.Len())
}

func TestTicket_StaleAfterKeyReused(t *testing.T) {
	var tr Tracker

	_, first := tr.Begin(context.Background(), "k")
	_, second := tr.Begin(context.Background(), "k")
	second.Done()
	_, third := tr.Begin(context.Background(), "k")

	assert.False(t, first.Current())
	assert.True(t, third.Current())
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), time.Millisecond))
	require.NoError(t, Sleep(context.Background(), 0))

	var tr Tracker
	ctx, _ := tr.Begin(context.Background(), "q")
	done := make(chan error, 1)
	go func() { done <- Sleep(ctx, time.Minute) }()

	tr.Begin(context.Background(), "q")

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, ErrSuperseded), "got %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Sleep did not return after supersession")
	}
}

func TestSleep_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Minute), context.Canceled)
}
