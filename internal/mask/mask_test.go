// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package mask_test

import (
	"io/fs"
	"testing"

	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/stretchr/testify/assert"
)

func TestMaskRendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mask     mask.Mask
		octal    string
		symbolic string
		allowed  fs.FileMode
	}{
		{0, "0000", "u=rwx,g=rwx,o=rwx", 0o777},
		{0o022, "0022", "u=rwx,g=rx,o=rx", 0o755},
		{0o002, "0002", "u=rwx,g=rwx,o=rx", 0o775},
		{0o077, "0077", "u=rwx,g=,o=", 0o700},
		{0o027, "0027", "u=rwx,g=rx,o=", 0o750},
		{0o777, "0777", "u=,g=,o=", 0},
		{0o356, "0356", "u=r,g=w,o=x", 0o421},
	}

	for _, tt := range tests {
		t.Run(tt.octal, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.octal, tt.mask.Octal())
			assert.Equal(t, tt.octal, tt.mask.String())
			assert.Equal(t, tt.symbolic, tt.mask.Symbolic())
			assert.Equal(t, tt.allowed, tt.mask.Allowed())
		})
	}
}

func TestMaskRestrict(t *testing.T) {
	t.Parallel()

	m := mask.Mask(0o022)

	assert.Equal(t, fs.FileMode(0o644), m.Restrict(0o666))
	assert.Equal(t, fs.FileMode(0o755), m.Restrict(0o777))
	assert.Equal(t, fs.FileMode(0o600), mask.Mask(0o077).Restrict(0o666))
	assert.Equal(t, fs.ModeDir|0o750, mask.Mask(0o027).Restrict(fs.ModeDir|0o777))
}

func TestMaskValid(t *testing.T) {
	t.Parallel()

	assert.True(t, mask.Mask(0).Valid())
	assert.True(t, mask.AllBits.Valid())
	assert.False(t, mask.Mask(0o1000).Valid())
	assert.False(t, mask.Mask(0o4022).Valid())
}

func TestMaskDenies(t *testing.T) {
	t.Parallel()

	m := mask.Mask(0o027)

	owner, group, other := mask.Classes[0], mask.Classes[1], mask.Classes[2]
	read, write, execute := mask.Perms[0], mask.Perms[1], mask.Perms[2]

	assert.False(t, m.Denies(owner, read))
	assert.False(t, m.Denies(owner, write))
	assert.False(t, m.Denies(owner, execute))
	assert.False(t, m.Denies(group, read))
	assert.True(t, m.Denies(group, write))
	assert.False(t, m.Denies(group, execute))
	assert.True(t, m.Denies(other, read))
	assert.True(t, m.Denies(other, write))
	assert.True(t, m.Denies(other, execute))
}
