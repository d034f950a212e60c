package sharkattack

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

var _ eventEmitter = &eventEmitterMock{}

type eventEmitterMock struct {
	EmitFunc func(ctx context.Context, e domain.Event) (domain.Event, error)

	calls struct {
		Emit []struct {
			Ctx context.Context
			E   domain.Event
		}
	}
	lockEmit sync.RWMutex
}

func (mock *eventEmitterMock) Emit(ctx context.Context, e domain.Event) (domain.Event, error) {
	if mock.EmitFunc == nil {
		panic("eventEmitterMock.EmitFunc: method is nil but eventEmitter.Emit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Event
	}{Ctx: ctx, E: e}
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, callInfo)
	mock.lockEmit.Unlock()
	return mock.EmitFunc(ctx, e)
}

func (mock *eventEmitterMock) EmitCalls() []struct {
	Ctx context.Context
	E   domain.Event
} {
	mock.lockEmit.RLock()
	calls := mock.calls.Emit
	mock.lockEmit.RUnlock()
	return calls
}
