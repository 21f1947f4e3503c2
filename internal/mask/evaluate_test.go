// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package mask_test

import (
	"errors"
	"testing"

	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/janderssonse/umaskexec/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyOctalIgnoresCurrentMask(t *testing.T) {
	t.Parallel()

	store := &testutil.MockMaskStore{}
	store.On("Commit", mask.Mask(0o077)).Return().Once()

	got, err := mask.Apply("077", store)
	require.NoError(t, err)
	assert.Equal(t, mask.Mask(0o077), got)

	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Load")
}

func TestApplySymbolicReadsOnceAndCommitsOnce(t *testing.T) {
	t.Parallel()

	store := &testutil.MockMaskStore{}
	store.On("Load").Return(mask.Mask(0o222)).Once()
	store.On("Commit", mask.Mask(0o022)).Return().Once()

	got, err := mask.Apply("u+w", store)
	require.NoError(t, err)
	assert.Equal(t, mask.Mask(0o022), got)

	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "Load", 1)
	store.AssertNumberOfCalls(t, "Commit", 1)
}

func TestApplyRejectsWithoutCommit(t *testing.T) {
	t.Parallel()

	malformed := []string{
		"u=rw,",
		",u=r",
		"u=rz",
		"ur",
		"0800",
		"1000",
		"00022",
		"g=u",
		"",
	}

	for _, expr := range malformed {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			store := &testutil.MockMaskStore{}
			store.On("Load").Return(mask.Mask(0o027)).Maybe()

			got, err := mask.Apply(expr, store)
			require.ErrorIs(t, err, mask.ErrInvalidExpression)
			assert.Zero(t, got)

			var exprErr *mask.ExpressionError
			require.ErrorAs(t, err, &exprErr)
			assert.Equal(t, expr, exprErr.Expression)
			assert.Error(t, exprErr.Cause)

			store.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestApplyRejectionLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	for start := mask.Mask(0); start <= mask.AllBits; start += 0o011 {
		store := testutil.NewMemoryStore(start)

		_, err := mask.Apply("a=rx,u+w,", store)
		require.Error(t, err)
		assert.Equal(t, start, store.Value)
		assert.Zero(t, store.Commits)
	}
}

func TestApplyChainsOnCurrentMask(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemoryStore(0)

	got, err := mask.Apply("o=rx,o-x", store)
	require.NoError(t, err)
	assert.Equal(t, mask.Mask(0o003), got)
	assert.Equal(t, mask.Mask(0o003), store.Value)
	assert.Equal(t, 1, store.Loads)
	assert.Equal(t, 1, store.Commits)

	got, err = mask.Apply("g-w", store)
	require.NoError(t, err)
	assert.Equal(t, mask.Mask(0o023), got)
}

func TestParseDoesNotReadCurrentForOctal(t *testing.T) {
	t.Parallel()

	called := false
	current := func() mask.Mask {
		called = true
		return 0o777
	}

	got, err := mask.Parse("0022", current)
	require.NoError(t, err)
	assert.Equal(t, mask.Mask(0o022), got)
	assert.False(t, called)
}

func TestExpressionErrorHidesCause(t *testing.T) {
	t.Parallel()

	_, err := mask.Parse("u=rz", func() mask.Mask { return 0 })
	require.Error(t, err)
	assert.Equal(t, "invalid mask expression: u=rz", err.Error())
	assert.NotErrorIs(t, err, mask.ErrInvalidSymbolicSyntax)

	var exprErr *mask.ExpressionError
	require.ErrorAs(t, err, &exprErr)
	assert.ErrorIs(t, exprErr.Cause, mask.ErrInvalidOctalDigit)
	assert.ErrorIs(t, exprErr.Cause, mask.ErrInvalidSymbolicSyntax)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, mask.Validate("022"))
	require.NoError(t, mask.Validate("u=rwx,go=rx"))
	require.ErrorIs(t, mask.Validate("private"), mask.ErrInvalidExpression)
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{"022", "0777", "u=rwx,g=rx,o=", "a=", "o=rx,o-x", "u+r-w", "u=rw,", "ur", ",", "9"} {
		f.Add(seed, uint16(0o022))
	}

	f.Fuzz(func(t *testing.T, expr string, start uint16) {
		store := testutil.NewMemoryStore(mask.Mask(start) & mask.AllBits)
		before := store.Value

		got, err := mask.Apply(expr, store)
		if err != nil {
			if !errors.Is(err, mask.ErrInvalidExpression) {
				t.Fatalf("Apply(%q) returned %v, want ErrInvalidExpression", expr, err)
			}

			if store.Value != before || store.Commits != 0 {
				t.Fatalf("Apply(%q) changed the mask on rejection", expr)
			}

			return
		}

		if !got.Valid() {
			t.Fatalf("Apply(%q) = %o, outside 0777", expr, got)
		}

		if store.Value != got || store.Commits != 1 {
			t.Fatalf("Apply(%q) did not commit exactly once", expr)
		}

		again, err := mask.ParseSymbolic(got.Symbolic(), before)
		if err != nil || again != got {
			t.Fatalf("symbolic round trip of %o gave %o, %v", got, again, err)
		}
	})
}
