package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/mock"
	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	views := t.TempDir()
	writeFile(t, filepath.Join(views, "layouts", "base.html"), `{{define "base"}}<html>{{template "content" .}}</html>{{end}}`)
	for _, page := range []string{"index", "contact", "about", "poojas", "login", "register"} {
		writeFile(t, filepath.Join(views, page+".html"), `{{define "content"}}<h1>`+page+`</h1>{{end}}`)
	}

	public := t.TempDir()
	writeFile(t, filepath.Join(public, "css", "style.css"), "body{}")

	return &config.StructuredConfig{
		App: config.App{
			Env:           config.EnvDevelopment,
			JWTSecret:     "secret",
			TokenDuration: time.Hour,
			TokenIssuer:   "test",
		},
		Storage: config.Storage{DB: config.DB{URL: "mongodb://localhost:27017/test"}},
		Server:  config.Server{Port: 0, ShutdownTimeout: time.Second},
		Web:     config.Web{ViewsDir: views, PublicDir: public},
	}
}

// fakeConnector counts calls and returns storages backed by a gomock
// repository, or err.
type fakeConnector struct {
	calls atomic.Int32
	repo  store.UserRepository
	err   error
}

func (f *fakeConnector) connect(context.Context, config.DB, *logger.Logger) (*store.Storages, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &store.Storages{UserRepository: f.repo, Backend: store.BackendMongo}, nil
}

func startApp(t *testing.T, a *App) (cancel func() error) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case <-a.Listening():
	case err := <-done:
		stop()
		t.Fatalf("app stopped before listening: %v", err)
	case <-time.After(5 * time.Second):
		stop()
		t.Fatal("app did not start listening")
	}

	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			return errors.New("app did not stop")
		}
	}
}

func TestApp_ServesSite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	connector := &fakeConnector{repo: repo}

	var logs bytes.Buffer
	a, err := New(newTestConfig(t), logger.New(&logs, "test"), WithConnector(connector.connect))
	require.NoError(t, err)
	assert.Equal(t, StateUninitialized, a.State())
	assert.Nil(t, a.Addr())

	stop := startApp(t, a)
	assert.Equal(t, StateListening, a.State())
	require.NotNil(t, a.Addr())

	client := resty.New().SetBaseURL("http://" + a.Addr().String())

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "<h1>index</h1>")

	resp, err = client.R().Get("/poojas")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "<h1>poojas</h1>")

	resp, err = client.R().Get("/css/style.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", resp.String())

	resp, err = client.R().Get("/does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "Route does not exist", resp.String())

	resp, err = client.R().Get("/api/v1/users/showMe")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// the services are wired to the connected repository
	repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"email":"nobody@example.com","password":"secret"}`).
		Post("/api/v1/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.JSONEq(t, `{"msg":"Invalid Credentials"}`, resp.String())

	require.NoError(t, stop())
	assert.Equal(t, StateStopped, a.State())
	assert.EqualValues(t, 1, connector.calls.Load())
	assert.Contains(t, logs.String(), "Server is listening at port ")
}

func TestApp_DatabaseFailure(t *testing.T) {
	connector := &fakeConnector{err: errors.New("connection refused")}

	var logs bytes.Buffer
	a, err := New(newTestConfig(t), logger.New(&logs, "test"), WithConnector(connector.connect))
	require.NoError(t, err)

	err = a.Run(context.Background())

	assert.ErrorIs(t, err, ErrDatabaseConnection)
	assert.Equal(t, StateFailed, a.State())
	assert.Nil(t, a.Addr())
	assert.EqualValues(t, 1, connector.calls.Load())
	assert.Equal(t, 1, strings.Count(logs.String(), "error connecting to database"))
	assert.NotContains(t, logs.String(), "Server is listening")

	select {
	case <-a.Listening():
		t.Fatal("failed app must not report listening")
	default:
	}
}

func TestApp_DatabaseFailure_SQLite(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Storage.DB.URL = "sqlite://" + filepath.Join(t.TempDir(), "missing", "site.db")

	var logs bytes.Buffer
	a, err := New(cfg, logger.New(&logs, "test"))
	require.NoError(t, err)

	err = a.Run(context.Background())

	assert.ErrorIs(t, err, ErrDatabaseConnection)
	assert.Equal(t, StateFailed, a.State())
	assert.Equal(t, 1, strings.Count(logs.String(), `"level":"error"`))
	assert.Equal(t, 1, strings.Count(logs.String(), "error connecting to database"))
}

func TestApp_RunTwice(t *testing.T) {
	connector := &fakeConnector{err: errors.New("down")}
	a, err := New(newTestConfig(t), logger.Nop(), WithConnector(connector.connect))
	require.NoError(t, err)

	_ = a.Run(context.Background())
	err = a.Run(context.Background())

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.EqualValues(t, 1, connector.calls.Load())
}

func TestNew_BadTemplates(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Web.ViewsDir = t.TempDir()

	_, err := New(cfg, logger.Nop())
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	connector := &fakeConnector{}
	cfg := config.DB{URL: "mongodb://localhost/test"}

	require.NoError(t, Migrate(context.Background(), cfg, logger.Nop(), connector.connect))
	assert.EqualValues(t, 1, connector.calls.Load())

	connector.err = errors.New("down")
	assert.ErrorIs(t, Migrate(context.Background(), cfg, logger.Nop(), connector.connect), ErrDatabaseConnection)
}

func TestMigrate_SQLite(t *testing.T) {
	cfg := config.DB{URL: "sqlite://" + filepath.Join(t.TempDir(), "site.db")}

	require.NoError(t, Migrate(context.Background(), cfg, logger.Nop(), nil))
	// migrations are idempotent
	require.NoError(t, Migrate(context.Background(), cfg, logger.Nop(), nil))
}

func TestCanTransition(t *testing.T) {
	all := []State{StateUninitialized, StateDBConnecting, StateDBConnected, StateListening, StateFailed, StateStopped}
	allowed := map[[2]State]bool{
		{StateUninitialized, StateDBConnecting}: true,
		{StateDBConnecting, StateDBConnected}:   true,
		{StateDBConnecting, StateFailed}:        true,
		{StateDBConnected, StateListening}:      true,
		{StateListening, StateStopped}:          true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]State{from, to}], canTransition(from, to), "%s -> %s", from, to)
		}
	}
}
