package recovery

import (
	"context"
	"sync"

	"github.com/heartmarshall/facts-mng/internal/adapter/relay"
)

var _ relaySink = &relaySinkMock{}

type relaySinkMock struct {
	SendFunc func(ctx context.Context, msg relay.Message) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg relay.Message
		}
	}
	lockSend sync.RWMutex
}

func (mock *relaySinkMock) Send(ctx context.Context, msg relay.Message) error {
	if mock.SendFunc == nil {
		panic("relaySinkMock.SendFunc: method is nil but relaySink.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg relay.Message
	}{Ctx: ctx, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *relaySinkMock) SendCalls() []struct {
	Ctx context.Context
	Msg relay.Message
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
