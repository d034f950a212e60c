package emitter

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

var _ eventLog = &eventLogMock{}

type eventLogMock struct {
	AppendFunc func(ctx context.Context, e domain.Event) (domain.Event, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.Event
		}
	}
	lockAppend sync.RWMutex
}

func (mock *eventLogMock) Append(ctx context.Context, e domain.Event) (domain.Event, error) {
	if mock.AppendFunc == nil {
		panic("eventLogMock.AppendFunc: method is nil but eventLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Event
	}{Ctx: ctx, E: e}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *eventLogMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.Event
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
