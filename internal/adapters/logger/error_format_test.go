package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/equip/internal/adapters/logger"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: []logger.ErrorEntry{{Message: "plain"}},
		},
		{
			name: "single zerr",
			err:  zerr.New("single"),
			want: []logger.ErrorEntry{{Message: "single", Metadata: map[string]any{}}},
		},
		{
			name: "annotated sentinel keeps metadata on the sentinel",
			err:  domain.Annotate(domain.ErrFileDecodeFailed, "path", "a.bin"),
			want: []logger.ErrorEntry{
				{Message: "input file is not valid UTF-8 text", Metadata: map[string]any{"path": "a.bin"}},
			},
		},
		{
			name: "wrapped standard cause",
			err:  domain.Annotate(zerr.Wrap(errors.New("open a.txt: no such file"), "failed to read input file"), "path", "a.txt"),
			want: []logger.ErrorEntry{
				{Message: "failed to read input file", Metadata: map[string]any{"path": "a.txt"}},
				{Message: "open a.txt: no such file"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	entries := []logger.ErrorEntry{
		{Message: "failed to resolve input", Metadata: map[string]any{"b": 2, "a": 1}},
		{Message: "first line\nsecond line"},
	}

	want := "Error: failed to resolve input\n" +
		"       a: 1\n" +
		"       b: 2\n" +
		"\n" +
		"  Caused by:\n" +
		"    → first line\n" +
		"      second line"

	assert.Equal(t, want, logger.FormatErrorEntriesExported(entries))
}
