package caption

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingProvider struct {
	calls int
	text  string
	err   error
}

func (p *countingProvider) Caption(ctx context.Context, image string) (string, error) {
	p.calls++
	return p.text, p.err
}

func TestCachedProviderMemoizesByImage(t *testing.T) {
	inner := &countingProvider{text: "A red bicycle."}
	cached := NewCachedProvider(inner, time.Minute)

	for i := 0; i < 3; i++ {
		text, err := cached.Caption(context.Background(), "same-image")
		assert.NoError(t, err)
		assert.Equal(t, "A red bicycle.", text)
	}
	assert.Equal(t, 1, inner.calls)

	_, err := cached.Caption(context.Background(), "different-image")
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProviderNeverCachesFailures(t *testing.T) {
	inner := &countingProvider{err: errors.New("model offline")}
	cached := NewCachedProvider(inner, time.Minute)

	_, err := cached.Caption(context.Background(), "same-image")
	assert.Error(t, err)
	_, err = cached.Caption(context.Background(), "same-image")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)

	// Once the collaborator recovers, the result is cached again.
	inner.err = nil
	inner.text = "A red bicycle."
	_, err = cached.Caption(context.Background(), "same-image")
	assert.NoError(t, err)
	_, _ = cached.Caption(context.Background(), "same-image")
	assert.Equal(t, 3, inner.calls)
}
