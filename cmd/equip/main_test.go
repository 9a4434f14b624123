package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/equip/internal/app"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	resolver *mocks.MockInputResolver
	digester *mocks.MockDigester
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	f := &fixture{
		resolver: mocks.NewMockInputResolver(ctrl),
		digester: mocks.NewMockDigester(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	application := app.New(
		f.resolver,
		f.digester,
		mocks.NewMockPasswordHasher(ctrl),
		mocks.NewMockRandomSource(ctrl),
		f.logger,
	)

	settings := domain.DefaultSettings()
	settings.Banner = false

	f.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:      application,
			Logger:   f.logger,
			Settings: settings,
		}, func() {}, nil
	}
	return f
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "equip version")
}

// TestRun_Hash verifies that a digest is printed to stdout only.
func TestRun_Hash(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("hello", nil)
	f.digester.EXPECT().Digest(domain.AlgorithmMD5, []byte("hello")).Return([]byte{0xde, 0xad}, nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"hash", "md5", "hello"}, stdout, stderr, f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "dead\n", stdout.String())
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_RequestFailure verifies that a reported failure exits 1 without logging again.
func TestRun_RequestFailure(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("", domain.ErrNoInput)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"hash", "sha1"}, stdout, stderr, f.provider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "an error occurred while trying to process your request\n\nno input was provided\n", stderr.String())
}

// TestRun_UsageError verifies that command line errors are logged and exit 2.
func TestRun_UsageError(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrRoundsTooHigh)
	})

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"hash", "bcrypt", "--rounds", "21", "pw"}, stdout, stderr, f.provider)

	assert.Equal(t, 2, exitCode)
	assert.Empty(t, stdout.String())
}

// TestRun_Cancelled verifies that cancelling the context aborts a blocking prompt.
func TestRun_Cancelled(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.InputSpec) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"hash", "md5"}, new(bytes.Buffer), new(bytes.Buffer), f.provider)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case ret := <-errCh:
		assert.Equal(t, 1, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
