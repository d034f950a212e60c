package sharkattack

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/adapter/feed"
)

var _ feedClient = &feedClientMock{}

type feedClientMock struct {
	ByCountryFunc    func(ctx context.Context, country string) ([]feed.Record, error)
	FetchRecordsFunc func(ctx context.Context) ([]feed.Record, error)

	calls struct {
		ByCountry []struct {
			Ctx     context.Context
			Country string
		}
		FetchRecords []struct {
			Ctx context.Context
		}
	}
	lockByCountry    sync.RWMutex
	lockFetchRecords sync.RWMutex
}

func (mock *feedClientMock) ByCountry(ctx context.Context, country string) ([]feed.Record, error) {
	if mock.ByCountryFunc == nil {
		panic("feedClientMock.ByCountryFunc: method is nil but feedClient.ByCountry was just called")
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

func (mock *feedClientMock) ByCountryCalls() []struct {
	Ctx     context.Context
	Country string
} {
	mock.lockByCountry.RLock()
	calls := mock.calls.ByCountry
	mock.lockByCountry.RUnlock()
	return calls
}

func (mock *feedClientMock) FetchRecords(ctx context.Context) ([]feed.Record, error) {
	if mock.FetchRecordsFunc == nil {
		panic("feedClientMock.FetchRecordsFunc: method is nil but feedClient.FetchRecords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFetchRecords.Lock()
	mock.calls.FetchRecords = append(mock.calls.FetchRecords, callInfo)
	mock.lockFetchRecords.Unlock()
	return mock.FetchRecordsFunc(ctx)
}

func (mock *feedClientMock) FetchRecordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockFetchRecords.RLock()
	calls := mock.calls.FetchRecords
	mock.lockFetchRecords.RUnlock()
	return calls
}
