package recovery

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

var _ attackStore = &attackStoreMock{}

type attackStoreMock struct {
	ApplyRecoveredFunc   func(ctx context.Context, id string, props domain.Properties) error
	DeleteFunc           func(ctx context.Context, id string) error
	InsertIfAbsentFunc   func(ctx context.Context, id string, props domain.Properties) (bool, error)
	ReplaceRecoveredFunc func(ctx context.Context, id string, props domain.Properties) error

	calls struct {
		ApplyRecovered []struct {
			Ctx   context.Context
			ID    string
			Props domain.Properties
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		InsertIfAbsent []struct {
			Ctx   context.Context
			ID    string
			Props domain.Properties
		}
		ReplaceRecovered []struct {
			Ctx   context.Context
			ID    string
			Props domain.Properties
		}
	}
	lockApplyRecovered   sync.RWMutex
	lockDelete           sync.RWMutex
	lockInsertIfAbsent   sync.RWMutex
	lockReplaceRecovered sync.RWMutex
}

func (mock *attackStoreMock) ApplyRecovered(ctx context.Context, id string, props domain.Properties) error {
	if mock.ApplyRecoveredFunc == nil {
		panic("attackStoreMock.ApplyRecoveredFunc: method is nil but attackStore.ApplyRecovered was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Props domain.Properties
	}{Ctx: ctx, ID: id, Props: props}
	mock.lockApplyRecovered.Lock()
	mock.calls.ApplyRecovered = append(mock.calls.ApplyRecovered, callInfo)
	mock.lockApplyRecovered.Unlock()
	return mock.ApplyRecoveredFunc(ctx, id, props)
}

func (mock *attackStoreMock) ApplyRecoveredCalls() []struct {
	Ctx   context.Context
	ID    string
	Props domain.Properties
} {
	mock.lockApplyRecovered.RLock()
	calls := mock.calls.ApplyRecovered
	mock.lockApplyRecovered.RUnlock()
	return calls
}

func (mock *attackStoreMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("attackStoreMock.DeleteFunc: method is nil but attackStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *attackStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *attackStoreMock) InsertIfAbsent(ctx context.Context, id string, props domain.Properties) (bool, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("attackStoreMock.InsertIfAbsentFunc: method is nil but attackStore.InsertIfAbsent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Props domain.Properties
	}{Ctx: ctx, ID: id, Props: props}
	mock.lockInsertIfAbsent.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, callInfo)
	mock.lockInsertIfAbsent.Unlock()
	return mock.InsertIfAbsentFunc(ctx, id, props)
}

func (mock *attackStoreMock) InsertIfAbsentCalls() []struct {
	Ctx   context.Context
	ID    string
	Props domain.Properties
} {
	mock.lockInsertIfAbsent.RLock()
	calls := mock.calls.InsertIfAbsent
	mock.lockInsertIfAbsent.RUnlock()
	return calls
}

func (mock *attackStoreMock) ReplaceRecovered(ctx context.Context, id string, props domain.Properties) error {
	if mock.ReplaceRecoveredFunc == nil {
		panic("attackStoreMock.ReplaceRecoveredFunc: method is nil but attackStore.ReplaceRecovered was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Props domain.Properties
	}{Ctx: ctx, ID: id, Props: props}
	mock.lockReplaceRecovered.Lock()
	mock.calls.ReplaceRecovered = append(mock.calls.ReplaceRecovered, callInfo)
	mock.lockReplaceRecovered.Unlock()
	return mock.ReplaceRecoveredFunc(ctx, id, props)
}

func (mock *attackStoreMock) ReplaceRecoveredCalls() []struct {
	Ctx   context.Context
	ID    string
	Props domain.Properties
} {
	mock.lockReplaceRecovered.RLock()
	calls := mock.calls.ReplaceRecovered
	mock.lockReplaceRecovered.RUnlock()
	return calls
}
