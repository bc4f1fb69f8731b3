package future_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkpost/client-go/future"
)

func TestGo_Fulfilled(t *testing.T) {
	t.Parallel()

	f := future.Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	v, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, future.Fulfilled, f.State())
}

func TestGo_Rejected(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := future.Go(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	_, err := f.Wait()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, future.Rejected, f.State())
}

func TestGo_CanceledContextSkipsWork(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	f := future.Go(ctx, func(context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	})

	_, err := f.Wait()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestNew_ResolvesOnce(t *testing.T) {
	t.Parallel()

	f, resolve := future.New[int]()
	assert.Equal(t, future.Pending, f.State())

	resolve(1, nil)
	resolve(2, errors.New("ignored"))

	v, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAwait_ContextDone(t *testing.T) {
	t.Parallel()

	f, _ := future.New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, future.Pending, f.State())
}

func TestResolvedAndFailed(t *testing.T) {
	t.Parallel()

	v, err := future.Resolved("ok").Wait()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	boom := errors.New("boom")
	_, err = future.Failed[string](boom).Wait()
	assert.ErrorIs(t, err, boom)
}

func TestThen(t *testing.T) {
	t.Parallel()

	f, resolve := future.New[int]()
	next := future.Then(f, func(v int, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return "value", nil
	})

	select {
	case <-next.Done():
		t.Fatal("continuation ran before the source settled")
	case <-time.After(10 * time.Millisecond):
	}

	resolve(7, nil)

	v, err := next.Wait()
	require.NoError(t, err)
	assert.Equal(t, "value", v)
}
