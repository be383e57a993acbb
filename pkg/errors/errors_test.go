// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers defined in pkg/errors/errors.go.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// TestNew
// ─────────────────────────────────────────────────────────────────────────────

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.ErrCodeInternal, "unexpected failure"},
		{"summary not found", errors.ErrCodeSummaryNotFound, "no summary for Suzuki"},
		{"invalid param", errors.ErrCodeBadRequest, "reaction SMILES must not be empty"},
		{"reaction type unknown", errors.ErrCodeReactionTypeUnknown, "no classifier rule matched"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail, "Detail should be empty for bare New()")
			assert.Nil(t, ae.Cause, "Cause should be nil for bare New()")
		})
	}
}

func TestNew_StackIsPopulated(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeInternal, "test")
	require.NotNil(t, ae)
	assert.Contains(t, ae.Stack, "errors_test")
}

// ─────────────────────────────────────────────────────────────────────────────
// TestWrap
// ─────────────────────────────────────────────────────────────────────────────

func TestWrap_NilErrReturnsNil(t *testing.T) {
	t.Parallel()

	result := errors.Wrap(nil, errors.ErrCodeInternal, "should not matter")
	assert.Nil(t, result)
}

func TestWrap_CauseChainIsPreserved(t *testing.T) {
	t.Parallel()

	root := stderrors.New("disk read failed")
	mid := errors.Wrap(root, errors.ErrCodeStorageError, "failed to load summary")
	top := errors.Wrap(mid, errors.ErrCodeRecommendationFailed, "recommendation aborted")

	require.NotNil(t, top)
	assert.True(t, stderrors.Is(top, root), "errors.Is must traverse the full chain")

	var ae *errors.AppError
	require.True(t, stderrors.As(top, &ae))
	assert.Equal(t, errors.ErrCodeRecommendationFailed, ae.Code)
}

func TestWrap_UnknownCodePreservesOriginal(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeSummaryNotFound, "no summary")
	wrapped := errors.Wrap(inner, errors.CodeUnknown, "adding context only")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.ErrCodeSummaryNotFound, wrapped.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Error() formatting
// ─────────────────────────────────────────────────────────────────────────────

func TestError_FormatWithAndWithoutDetail(t *testing.T) {
	t.Parallel()

	plain := errors.New(errors.ErrCodeBadRequest, "bad input")
	assert.Equal(t, "[COMMON_002] bad input", plain.Error())

	detailed := plain.WithDetail("field=reaction_smiles")
	assert.Equal(t, "[COMMON_002] bad input: field=reaction_smiles", detailed.Error())
}

func TestWithDetail_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	orig := errors.New(errors.ErrCodeNotFound, "missing")
	clone := orig.WithDetail("id=42")

	assert.Empty(t, orig.Detail)
	assert.Equal(t, "id=42", clone.Detail)
	assert.Equal(t, orig.Code, clone.Code)
}

func TestWithCause_AttachesCause(t *testing.T) {
	t.Parallel()

	root := fmt.Errorf("row scan: %w", stderrors.New("bad column"))
	ae := errors.New(errors.ErrCodeDatabaseError, "query failed").WithCause(root)

	assert.True(t, stderrors.Is(ae, root))
}

// ─────────────────────────────────────────────────────────────────────────────
// Chain inspection helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestIsCode_FindsCodeAnywhereInChain(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeSummaryStale, "generation behind dataset")
	outer := fmt.Errorf("refresh: %w", inner)

	assert.True(t, errors.IsCode(outer, errors.ErrCodeSummaryStale))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeSummaryNotFound))
	assert.False(t, errors.IsCode(nil, errors.ErrCodeSummaryStale))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrCodeReagentUnknown,
		errors.GetCode(errors.New(errors.ErrCodeReagentUnknown, "Xantphos variant")))
}

func TestErrorMessageNeverContainsStack(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeInternal, "boom")
	assert.False(t, strings.Contains(ae.Error(), ae.Stack) && ae.Stack != "",
		"Error() output must stay clean of stack traces")
}
