package recovery

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

var _ eventLog = &eventLogMock{}

type eventLogMock struct {
	GetCheckpointFunc   func(ctx context.Context, name string) (int64, error)
	ListAfterFunc       func(ctx context.Context, aggregateType string, afterSeq int64, limit int) ([]domain.Event, error)
	ResetCheckpointFunc func(ctx context.Context, name string) error
	SaveCheckpointFunc  func(ctx context.Context, name string, seq int64) error

	calls struct {
		GetCheckpoint []struct {
			Ctx  context.Context
			Name string
		}
		ListAfter []struct {
			Ctx           context.Context
			AggregateType string
			AfterSeq      int64
			Limit         int
		}
		ResetCheckpoint []struct {
			Ctx  context.Context
			Name string
		}
		SaveCheckpoint []struct {
			Ctx  context.Context
			Name string
			Seq  int64
		}
	}
	lockGetCheckpoint   sync.RWMutex
	lockListAfter       sync.RWMutex
	lockResetCheckpoint sync.RWMutex
	lockSaveCheckpoint  sync.RWMutex
}

func (mock *eventLogMock) GetCheckpoint(ctx context.Context, name string) (int64, error) {
	if mock.GetCheckpointFunc == nil {
		panic("eventLogMock.GetCheckpointFunc: method is nil but eventLog.GetCheckpoint was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetCheckpoint.Lock()
	mock.calls.GetCheckpoint = append(mock.calls.GetCheckpoint, callInfo)
	mock.lockGetCheckpoint.Unlock()
	return mock.GetCheckpointFunc(ctx, name)
}

func (mock *eventLogMock) GetCheckpointCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetCheckpoint.RLock()
	calls := mock.calls.GetCheckpoint
	mock.lockGetCheckpoint.RUnlock()
	return calls
}

func (mock *eventLogMock) ListAfter(ctx context.Context, aggregateType string, afterSeq int64, limit int) ([]domain.Event, error) {
	if mock.ListAfterFunc == nil {
		panic("eventLogMock.ListAfterFunc: method is nil but eventLog.ListAfter was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		AggregateType string
		AfterSeq      int64
		Limit         int
	}{Ctx: ctx, AggregateType: aggregateType, AfterSeq: afterSeq, Limit: limit}
	mock.lockListAfter.Lock()
	mock.calls.ListAfter = append(mock.calls.ListAfter, callInfo)
	mock.lockListAfter.Unlock()
	return mock.ListAfterFunc(ctx, aggregateType, afterSeq, limit)
}

func (mock *eventLogMock) ListAfterCalls() []struct {
	Ctx           context.Context
	AggregateType string
	AfterSeq      int64
	Limit         int
} {
	mock.lockListAfter.RLock()
	calls := mock.calls.ListAfter
	mock.lockListAfter.RUnlock()
	return calls
}

func (mock *eventLogMock) ResetCheckpoint(ctx context.Context, name string) error {
	if mock.ResetCheckpointFunc == nil {
		panic("eventLogMock.ResetCheckpointFunc: method is nil but eventLog.ResetCheckpoint was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockResetCheckpoint.Lock()
	mock.calls.ResetCheckpoint = append(mock.calls.ResetCheckpoint, callInfo)
	mock.lockResetCheckpoint.Unlock()
	return mock.ResetCheckpointFunc(ctx, name)
}

func (mock *eventLogMock) ResetCheckpointCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockResetCheckpoint.RLock()
	calls := mock.calls.ResetCheckpoint
	mock.lockResetCheckpoint.RUnlock()
	return calls
}

func (mock *eventLogMock) SaveCheckpoint(ctx context.Context, name string, seq int64) error {
	if mock.SaveCheckpointFunc == nil {
		panic("eventLogMock.SaveCheckpointFunc: method is nil but eventLog.SaveCheckpoint was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Seq  int64
	}{Ctx: ctx, Name: name, Seq: seq}
	mock.lockSaveCheckpoint.Lock()
	mock.calls.SaveCheckpoint = append(mock.calls.SaveCheckpoint, callInfo)
	mock.lockSaveCheckpoint.Unlock()
	return mock.SaveCheckpointFunc(ctx, name, seq)
}

func (mock *eventLogMock) SaveCheckpointCalls() []struct {
	Ctx  context.Context
	Name string
	Seq  int64
} {
	mock.lockSaveCheckpoint.RLock()
	calls := mock.calls.SaveCheckpoint
	mock.lockSaveCheckpoint.RUnlock()
	return calls
}
