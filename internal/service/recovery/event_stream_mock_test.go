package recovery

import (
	"context"
	"sync"

	redisadapter "github.com/heartmarshall/facts-mng/internal/adapter/redis"
)

var _ eventStream = &eventStreamMock{}

type eventStreamMock struct {
	AckFunc         func(ctx context.Context, ids ...string) error
	EnsureGroupFunc func(ctx context.Context) error
	ReadFunc        func(ctx context.Context, count int64) ([]redisadapter.StreamMessage, error)

	calls struct {
		Ack []struct {
			Ctx context.Context
			IDs []string
		}
		EnsureGroup []struct {
			Ctx context.Context
		}
		Read []struct {
			Ctx   context.Context
			Count int64
		}
	}
	lockAck         sync.RWMutex
	lockEnsureGroup sync.RWMutex
	lockRead        sync.RWMutex
}

func (mock *eventStreamMock) Ack(ctx context.Context, ids ...string) error {
	if mock.AckFunc == nil {
		panic("eventStreamMock.AckFunc: method is nil but eventStream.Ack was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []string
	}{Ctx: ctx, IDs: ids}
	mock.lockAck.Lock()
	mock.calls.Ack = append(mock.calls.Ack, callInfo)
	mock.lockAck.Unlock()
	return mock.AckFunc(ctx, ids...)
}

func (mock *eventStreamMock) AckCalls() []struct {
	Ctx context.Context
	IDs []string
} {
	mock.lockAck.RLock()
	calls := mock.calls.Ack
	mock.lockAck.RUnlock()
	return calls
}

func (mock *eventStreamMock) EnsureGroup(ctx context.Context) error {
	if mock.EnsureGroupFunc == nil {
		panic("eventStreamMock.EnsureGroupFunc: method is nil but eventStream.EnsureGroup was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockEnsureGroup.Lock()
	mock.calls.EnsureGroup = append(mock.calls.EnsureGroup, callInfo)
	mock.lockEnsureGroup.Unlock()
	return mock.EnsureGroupFunc(ctx)
}

func (mock *eventStreamMock) EnsureGroupCalls() []struct {
	Ctx context.Context
} {
	mock.lockEnsureGroup.RLock()
	calls := mock.calls.EnsureGroup
	mock.lockEnsureGroup.RUnlock()
	return calls
}

func (mock *eventStreamMock) Read(ctx context.Context, count int64) ([]redisadapter.StreamMessage, error) {
	if mock.ReadFunc == nil {
		panic("eventStreamMock.ReadFunc: method is nil but eventStream.Read was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int64
	}{Ctx: ctx, Count: count}
	mock.lockRead.Lock()
	mock.calls.Read = append(mock.calls.Read, callInfo)
	mock.lockRead.Unlock()
	return mock.ReadFunc(ctx, count)
}

func (mock *eventStreamMock) ReadCalls() []struct {
	Ctx   context.Context
	Count int64
} {
	mock.lockRead.RLock()
	calls := mock.calls.Read
	mock.lockRead.RUnlock()
	return calls
}
