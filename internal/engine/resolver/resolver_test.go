package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports/mocks"
	"go.trai.ch/equip/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	files    *mocks.MockFileReader
	prompter *mocks.MockPrompter
	logger   *mocks.MockLogger
	resolver *resolver.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		files:    mocks.NewMockFileReader(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.resolver = resolver.New(f.files, f.prompter, f.logger)
	return f
}

func TestResolve_Precedence(t *testing.T) {
	ctx := context.Background()

	t.Run("forced prompt wins over file and text", func(t *testing.T) {
		f := newFixture(t)
		f.prompter.EXPECT().Prompt(ctx, ">", false).Return("typed", nil)

		got, err := f.resolver.Resolve(ctx, domain.InputSpec{
			Input:       domain.TokensInput([]string{"positional"}),
			File:        "input.txt",
			ForcePrompt: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "typed", got)
	})

	t.Run("file wins over text", func(t *testing.T) {
		f := newFixture(t)
		f.files.EXPECT().ReadText("input.txt").Return("from file", nil)

		got, err := f.resolver.Resolve(ctx, domain.InputSpec{
			Input: domain.TokensInput([]string{"positional"}),
			File:  "input.txt",
		})
		require.NoError(t, err)
		assert.Equal(t, "from file", got)
	})

	t.Run("tokens joined with a single space", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.resolver.Resolve(ctx, domain.InputSpec{
			Input: domain.TokensInput([]string{"hello", "big", "world"}),
		})
		require.NoError(t, err)
		assert.Equal(t, "hello big world", got)
	})

	t.Run("single text used as is", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.resolver.Resolve(ctx, domain.InputSpec{Input: domain.TextInput("hello  world")})
		require.NoError(t, err)
		assert.Equal(t, "hello  world", got)
	})

	t.Run("prompt when nothing else given", func(t *testing.T) {
		f := newFixture(t)
		f.prompter.EXPECT().Prompt(ctx, ">", true).Return("secret", nil)

		got, err := f.resolver.Resolve(ctx, domain.InputSpec{Secret: true})
		require.NoError(t, err)
		assert.Equal(t, "secret", got)
	})
}

func TestResolve_LogsSource(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	files := mocks.NewMockFileReader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Debug("reading file contents from notes.txt"),
		log.EXPECT().Debug("using text contents"),
	)
	files.EXPECT().ReadText("notes.txt").Return("notes", nil)

	r := resolver.New(files, mocks.NewMockPrompter(ctrl), log)
	_, err := r.Resolve(ctx, domain.InputSpec{File: "notes.txt"})
	require.NoError(t, err)
	_, err = r.Resolve(ctx, domain.InputSpec{Input: domain.TextInput("text")})
	require.NoError(t, err)
}

func TestResolve_Empty(t *testing.T) {
	ctx := context.Background()

	t.Run("empty prompt line", func(t *testing.T) {
		f := newFixture(t)
		f.prompter.EXPECT().Prompt(ctx, ">", false).Return("", nil)

		_, err := f.resolver.Resolve(ctx, domain.InputSpec{})
		require.ErrorIs(t, err, domain.ErrNoInput)
	})

	t.Run("empty file", func(t *testing.T) {
		f := newFixture(t)
		f.files.EXPECT().ReadText("empty.txt").Return("", nil)

		_, err := f.resolver.Resolve(ctx, domain.InputSpec{File: "empty.txt"})
		require.ErrorIs(t, err, domain.ErrNoInput)
	})

	t.Run("empty token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.resolver.Resolve(ctx, domain.InputSpec{Input: domain.TokensInput([]string{""})})
		require.ErrorIs(t, err, domain.ErrNoInput)
	})
}

func TestResolve_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("file error is returned", func(t *testing.T) {
		f := newFixture(t)
		readErr := errors.New("permission denied")
		f.files.EXPECT().ReadText("locked.txt").Return("", readErr)

		_, err := f.resolver.Resolve(ctx, domain.InputSpec{File: "locked.txt"})
		require.ErrorIs(t, err, readErr)
	})

	t.Run("prompt cancellation is returned", func(t *testing.T) {
		f := newFixture(t)
		f.prompter.EXPECT().Prompt(ctx, ">", false).Return("", context.Canceled)

		_, err := f.resolver.Resolve(ctx, domain.InputSpec{})
		require.ErrorIs(t, err, context.Canceled)
	})
}
