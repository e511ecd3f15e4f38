package txmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommitWithoutTx(t *testing.T) {
	t.Parallel()

	called := false
	AfterCommit(context.Background(), func(context.Context) { called = true })

	assert.True(t, called)
	assert.False(t, InTx(context.Background()))
}

func TestAfterCommitQueuesInsideTx(t *testing.T) {
	t.Parallel()

	st := &txState{}
	ctx := context.WithValue(context.Background(), txKey{}, st)

	called := false
	AfterCommit(ctx, func(context.Context) { called = true })

	assert.False(t, called)
	assert.Len(t, st.afterCommit, 1)
	assert.True(t, InTx(ctx))
}
