package sharkattack

import (
	"context"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	PublishFunc func(ctx context.Context, payload map[string]any) error

	calls struct {
		Publish []struct {
			Ctx     context.Context
			Payload map[string]any
		}
	}
	lockPublish sync.RWMutex
}

func (mock *notifierMock) Publish(ctx context.Context, payload map[string]any) error {
	if mock.PublishFunc == nil {
		panic("notifierMock.PublishFunc: method is nil but notifier.Publish was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload map[string]any
	}{Ctx: ctx, Payload: payload}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, payload)
}

func (mock *notifierMock) PublishCalls() []struct {
	Ctx     context.Context
	Payload map[string]any
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
