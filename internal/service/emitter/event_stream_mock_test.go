package emitter

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

var _ eventStream = &eventStreamMock{}

type eventStreamMock struct {
	PublishFunc func(ctx context.Context, e domain.Event) error

	calls struct {
		Publish []struct {
			Ctx context.Context
			E   domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventStreamMock) Publish(ctx context.Context, e domain.Event) error {
	if mock.PublishFunc == nil {
		panic("eventStreamMock.PublishFunc: method is nil but eventStream.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Event
	}{Ctx: ctx, E: e}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, e)
}

func (mock *eventStreamMock) PublishCalls() []struct {
	Ctx context.Context
	E   domain.Event
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
