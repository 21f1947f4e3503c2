// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/janderssonse/umaskexec/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestOutputMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   Format
		expected string
	}{
		{"octal", OctalFormat, "0022\n"},
		{"symbolic", SymbolicFormat, "u=rwx,g=rx,o=rx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer

			o := NewOutput(&out, &errOut, tt.format, "umaskexec")
			require.NoError(t, o.Mask(domain.NewMaskResult(0o022)))

			assert.Equal(t, tt.expected, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestOutputMaskJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	o := NewOutput(&out, &bytes.Buffer{}, JSONFormat, "umaskexec")
	require.NoError(t, o.Mask(domain.NewMaskResult(0o027)))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "0027", decoded["octal"])
	assert.Equal(t, "u=rwx,g=rx,o=", decoded["symbolic"])
	assert.Equal(t, "-rw-r-----", decoded["file_mode"])
	assert.Equal(t, "drwxr-x---", decoded["dir_mode"])
}

func TestOutputMaskExplain(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	o := NewOutput(&out, &bytes.Buffer{}, ExplainFormat, "umaskexec")
	require.NoError(t, o.Mask(domain.NewMaskResult(0o027)))

	text := out.String()
	assert.Contains(t, text, "0027  u=rwx,g=rx,o=")
	assert.Contains(t, text, "owner")
	assert.Contains(t, text, "execute")
	assert.Contains(t, text, "new files -rw-r-----, new directories drwxr-x---")
	assert.NotContains(t, text, "\x1b[", "no escape codes when not writing to a terminal")
}

func TestOutputMaskWriteError(t *testing.T) {
	t.Parallel()

	o := NewOutput(failingWriter{}, &bytes.Buffer{}, OctalFormat, "umaskexec")

	err := o.Mask(domain.NewMaskResult(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing output")
}

func TestOutputError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	o := NewOutput(&out, &errOut, OctalFormat, "umaskexec")
	require.NoError(t, o.Error("bad umask: u=rz"))

	assert.Equal(t, "umaskexec: bad umask: u=rz\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestOutputErrorJSON(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	o := NewOutput(&out, &errOut, JSONFormat, "")
	require.NoError(t, o.Error("bad umask: 8"))

	assert.JSONEq(t, `{"error":"bad umask: 8"}`, out.String())
	assert.Equal(t, "bad umask: 8\n", errOut.String())
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}
