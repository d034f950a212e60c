package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/domain"
	"github.com/heartmarshall/facts-mng/internal/service/sharkattack"
)

var _ sharkAttackService = &sharkAttackServiceMock{}

type sharkAttackServiceMock struct {
	ByCountryFunc func(ctx context.Context, country string) ([]domain.CountryAttack, error)
	CreateFunc    func(ctx context.Context, input sharkattack.CreateInput) (*domain.SharkAttack, error)
	DeleteFunc    func(ctx context.Context, input sharkattack.DeleteInput) (*domain.CommandResult, error)
	GetFunc       func(ctx context.Context, id string, organizationID string) (*domain.SharkAttack, error)
	ImportFunc    func(ctx context.Context) (*sharkattack.ImportResult, error)
	ListFunc      func(ctx context.Context, input sharkattack.ListInput) (*sharkattack.ListResult, error)
	StatsFunc     func(ctx context.Context, recordLimit int) (domain.Stats, error)
	UpdateFunc    func(ctx context.Context, input sharkattack.UpdateInput) (*domain.SharkAttack, error)

	calls struct {
		ByCountry []struct {
			Ctx     context.Context
			Country string
		}
		Create []struct {
			Ctx   context.Context
			Input sharkattack.CreateInput
		}
		Delete []struct {
			Ctx   context.Context
			Input sharkattack.DeleteInput
		}
		Get []struct {
			Ctx            context.Context
			ID             string
			OrganizationID string
		}
		Import []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx   context.Context
			Input sharkattack.ListInput
		}
		Stats []struct {
			Ctx         context.Context
			RecordLimit int
		}
		Update []struct {
			Ctx   context.Context
			Input sharkattack.UpdateInput
		}
	}
	lockByCountry sync.RWMutex
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockGet       sync.RWMutex
	lockImport    sync.RWMutex
	lockList      sync.RWMutex
	lockStats     sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *sharkAttackServiceMock) ByCountry(ctx context.Context, country string) ([]domain.CountryAttack, error) {
	if mock.ByCountryFunc == nil {
		panic("sharkAttackServiceMock.ByCountryFunc: method is nil but sharkAttackService.ByCountry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Country string
	}{Ctx: ctx, Country: country}
	mock.lockByCountry.Lock()
	mock.calls.ByCountry = append(mock.calls.ByCountry, callInfo)
	mock.lockByCountry.Unlock()
	return mock.ByCountryFunc(ctx, country)
}

func (mock *sharkAttackServiceMock) ByCountryCalls() []struct {
	Ctx     context.Context
	Country string
} {
	mock.lockByCountry.RLock()
	calls := mock.calls.ByCountry
	mock.lockByCountry.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) Create(ctx context.Context, input sharkattack.CreateInput) (*domain.SharkAttack, error) {
	if mock.CreateFunc == nil {
		panic("sharkAttackServiceMock.CreateFunc: method is nil but sharkAttackService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input sharkattack.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *sharkAttackServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input sharkattack.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) Delete(ctx context.Context, input sharkattack.DeleteInput) (*domain.CommandResult, error) {
	if mock.DeleteFunc == nil {
		panic("sharkAttackServiceMock.DeleteFunc: method is nil but sharkAttackService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input sharkattack.DeleteInput
	}{Ctx: ctx, Input: input}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *sharkAttackServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input sharkattack.DeleteInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) Get(ctx context.Context, id string, organizationID string) (*domain.SharkAttack, error) {
	if mock.GetFunc == nil {
		panic("sharkAttackServiceMock.GetFunc: method is nil but sharkAttackService.Get was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ID             string
		OrganizationID string
	}{Ctx: ctx, ID: id, OrganizationID: organizationID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id, organizationID)
}

func (mock *sharkAttackServiceMock) GetCalls() []struct {
	Ctx            context.Context
	ID             string
	OrganizationID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) Import(ctx context.Context) (*sharkattack.ImportResult, error) {
	if mock.ImportFunc == nil {
		panic("sharkAttackServiceMock.ImportFunc: method is nil but sharkAttackService.Import was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx)
}

func (mock *sharkAttackServiceMock) ImportCalls() []struct {
	Ctx context.Context
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) List(ctx context.Context, input sharkattack.ListInput) (*sharkattack.ListResult, error) {
	if mock.ListFunc == nil {
		panic("sharkAttackServiceMock.ListFunc: method is nil but sharkAttackService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input sharkattack.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *sharkAttackServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input sharkattack.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) Stats(ctx context.Context, recordLimit int) (domain.Stats, error) {
	if mock.StatsFunc == nil {
		panic("sharkAttackServiceMock.StatsFunc: method is nil but sharkAttackService.Stats was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecordLimit int
	}{Ctx: ctx, RecordLimit: recordLimit}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, recordLimit)
}

func (mock *sharkAttackServiceMock) StatsCalls() []struct {
	Ctx         context.Context
	RecordLimit int
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *sharkAttackServiceMock) Update(ctx context.Context, input sharkattack.UpdateInput) (*domain.SharkAttack, error) {
	if mock.UpdateFunc == nil {
		panic("sharkAttackServiceMock.UpdateFunc: method is nil but sharkAttackService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input sharkattack.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *sharkAttackServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input sharkattack.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
