package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	payrollerrors "go-erp/internal/payroll/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() CalculateResponse {
	return CalculateResponse{
		Category:     string(CategoryESIPF),
		Month:        3,
		Year:         2024,
		Records:      []PayrollLineItem{Calculate(CalculationInput{Category: CategoryESIPF, Baseline: 30000, Absent: 5})},
		Warnings:     []string{},
		CalculatedAt: time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisDraftStore(t *testing.T) {
	ctx := context.Background()
	key := DraftKey("c1", "u1", CategoryESIPF)
	assert.Equal(t, "payroll:draft:c1:u1:esi-pf", key)

	t.Run("put then get", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(rdb, 2*time.Hour)
		draft := sampleDraft()
		payload, err := json.Marshal(draft)
		require.NoError(t, err)

		mock.ExpectSet(key, payload, 2*time.Hour).SetVal("OK")
		mock.ExpectGet(key).SetVal(string(payload))

		require.NoError(t, store.Put(ctx, "c1", "u1", draft))
		got, err := store.Get(ctx, "c1", "u1", CategoryESIPF)
		require.NoError(t, err)
		assert.Equal(t, draft, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing draft", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(rdb, 0)

		mock.ExpectGet(key).RedisNil()

		_, err := store.Get(ctx, "c1", "u1", CategoryESIPF)
		assert.ErrorIs(t, err, payrollerrors.ErrDraftNotFound)
	})

	t.Run("redis error is returned", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(rdb, time.Hour)

		mock.ExpectGet(key).SetErr(errors.New("i/o timeout"))

		_, err := store.Get(ctx, "c1", "u1", CategoryESIPF)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, payrollerrors.ErrDraftNotFound)
	})
}

func TestMemoryDraftStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDraftStore()

	_, err := store.Get(ctx, "c1", "u1", CategoryESIPF)
	assert.ErrorIs(t, err, payrollerrors.ErrDraftNotFound)

	draft := sampleDraft()
	require.NoError(t, store.Put(ctx, "c1", "u1", draft))

	got, err := store.Get(ctx, "c1", "u1", CategoryESIPF)
	require.NoError(t, err)
	assert.Equal(t, draft, got)

	_, err = store.Get(ctx, "c1", "u2", CategoryESIPF)
	assert.ErrorIs(t, err, payrollerrors.ErrDraftNotFound)

	assert.Error(t, store.Put(ctx, "c1", "u1", CalculateResponse{Category: "bogus"}))
}
