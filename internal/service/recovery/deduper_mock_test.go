package recovery

import (
	"context"
	"sync"
)

var _ deduper = &deduperMock{}

type deduperMock struct {
	ForgetFunc        func(ctx context.Context, seq int64) error
	MarkProcessedFunc func(ctx context.Context, seq int64) (bool, error)

	calls struct {
		Forget []struct {
			Ctx context.Context
			Seq int64
		}
		MarkProcessed []struct {
			Ctx context.Context
			Seq int64
		}
	}
	lockForget        sync.RWMutex
	lockMarkProcessed sync.RWMutex
}

func (mock *deduperMock) Forget(ctx context.Context, seq int64) error {
	if mock.ForgetFunc == nil {
		panic("deduperMock.ForgetFunc: method is nil but deduper.Forget was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Seq int64
	}{Ctx: ctx, Seq: seq}
	mock.lockForget.Lock()
	mock.calls.Forget = append(mock.calls.Forget, callInfo)
	mock.lockForget.Unlock()
	return mock.ForgetFunc(ctx, seq)
}

func (mock *deduperMock) ForgetCalls() []struct {
	Ctx context.Context
	Seq int64
} {
	mock.lockForget.RLock()
	calls := mock.calls.Forget
	mock.lockForget.RUnlock()
	return calls
}

func (mock *deduperMock) MarkProcessed(ctx context.Context, seq int64) (bool, error) {
	if mock.MarkProcessedFunc == nil {
		panic("deduperMock.MarkProcessedFunc: method is nil but deduper.MarkProcessed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Seq int64
	}{Ctx: ctx, Seq: seq}
	mock.lockMarkProcessed.Lock()
	mock.calls.MarkProcessed = append(mock.calls.MarkProcessed, callInfo)
	mock.lockMarkProcessed.Unlock()
	return mock.MarkProcessedFunc(ctx, seq)
}

func (mock *deduperMock) MarkProcessedCalls() []struct {
	Ctx context.Context
	Seq int64
} {
	mock.lockMarkProcessed.RLock()
	calls := mock.calls.MarkProcessed
	mock.lockMarkProcessed.RUnlock()
	return calls
}
