//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/facts-mng/internal/adapter/feed"
	mongotesthelper "github.com/heartmarshall/facts-mng/internal/adapter/mongo/testhelper"
	mongostore "github.com/heartmarshall/facts-mng/internal/adapter/mongo/sharkattack"
	"github.com/heartmarshall/facts-mng/internal/adapter/postgres/eventlog"
	"github.com/heartmarshall/facts-mng/internal/adapter/postgres/testhelper"
	redisadapter "github.com/heartmarshall/facts-mng/internal/adapter/redis"
	"github.com/heartmarshall/facts-mng/internal/adapter/relay"
	authpkg "github.com/heartmarshall/facts-mng/internal/auth"
	"github.com/heartmarshall/facts-mng/internal/config"
	"github.com/heartmarshall/facts-mng/internal/service/emitter"
	"github.com/heartmarshall/facts-mng/internal/service/recovery"
	"github.com/heartmarshall/facts-mng/internal/service/sharkattack"
	"github.com/heartmarshall/facts-mng/internal/transport/middleware"
	"github.com/heartmarshall/facts-mng/internal/transport/rest"
	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

const (
	streamName = "events:SharkAttack"
	groupName  = "facts-mng"
	ackKey     = "e2e-self"
	peerAckKey = "e2e-peer"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// testServer wraps the full stack: mongo view, postgres event log, redis
// broker, REST API and recovery pipeline.
// ---------------------------------------------------------------------------

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Redis   *goredis.Client
	Attacks *mongostore.Repo
	Events  *eventlog.Repo
	Syncer  *recovery.Syncer

	// Peer emits events the way another replica would.
	Peer *emitter.Emitter

	jwt *authpkg.JWTManager
}

// feedServer serves a fixed open data page.
func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupTestServer(t *testing.T, feedBody string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 1. Stores.
	pool := testhelper.SetupTestDB(t)
	attacks := mongostore.New(mongotesthelper.SetupTestCollection(t), logger)
	require.NoError(t, attacks.EnsureIndexes(context.Background()))
	events := eventlog.New(pool)

	// 2. Broker.
	mr := miniredis.RunT(t)
	rc := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	stream := redisadapter.NewEventStream(rc, streamName, groupName, "e2e", 50*time.Millisecond)
	require.NoError(t, stream.EnsureGroup(context.Background()))
	notes := redisadapter.NewNotifier(rc, logger)

	// 3. Services.
	feedClient := feed.NewClient(config.FeedConfig{URL: feedServer(t, feedBody).URL, Timeout: 2 * time.Second}, logger)
	svc := sharkattack.NewService(logger, attacks, emitter.New(logger, events, stream, ackKey), notes, feedClient, 4)

	handler := recovery.NewHandler(logger, attacks, relay.Noop{})
	consumer := recovery.NewConsumer(logger, handler, stream, redisadapter.NewDeduper(rc, time.Hour), ackKey, 10)
	syncer := recovery.NewSyncer(logger, handler, events, recovery.DefaultCheckpoint, 100, recovery.DefaultHoldBack)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = consumer.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// 4. HTTP.
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	router := rest.NewRouter(rest.RouterDeps{
		Health:       rest.NewHealthHandler("e2e", rest.Check{Name: "postgres", Pinger: pool}),
		SharkAttacks: rest.NewSharkAttackHandler(svc, logger),
		Subscription: rest.NewSubscriptionHandler(notes, logger),
		API:          middleware.Auth(jwtMgr),
		Global: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.Logger(logger),
		),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Redis:   rc,
		Attacks: attacks,
		Events:  events,
		Syncer:  syncer,
		Peer:    emitter.New(logger, events, stream, peerAckKey),
		jwt:     jwtMgr,
	}
}

// token mints an access token with the given roles.
func (ts *testServer) token(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(ctxutil.Identity{
		Subject:  "user-1",
		Username: "jdoe",
		Roles:    roles,
	})
	require.NoError(t, err)
	return tok
}

func (ts *testServer) writer(t *testing.T) string {
	return ts.token(t, sharkattack.RoleRead, sharkattack.RoleWrite)
}

// do sends a JSON request and decodes the JSON response into a generic value.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out any
	if resp.ContentLength != 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// object asserts v is a JSON object.
func object(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", v)
	return m
}
