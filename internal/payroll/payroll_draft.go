package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	payrollerrors "go-erp/internal/payroll/errors"

	"github.com/redis/go-redis/v9"
)

const DraftKeyPrefix = "payroll:draft:"

func DraftKey(companyID, actorID string, category Category) string {
	return fmt.Sprintf("%s%s:%s:%s", DraftKeyPrefix, companyID, actorID, category.Slug())
}

// DraftStore keeps the last calculated report per operator so a failed save can be retried.
//
//go:generate mockgen -source=payroll_draft.go -destination=mock/payroll_draft_mock.go -package=mock
type DraftStore interface {
	Put(ctx context.Context, companyID, actorID string, draft CalculateResponse) error
	Get(ctx context.Context, companyID, actorID string, category Category) (CalculateResponse, error)
}

type redisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) DraftStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisDraftStore{rdb: rdb, ttl: ttl}
}

func (s *redisDraftStore) Put(ctx context.Context, companyID, actorID string, draft CalculateResponse) error {
	category, err := ParseCategory(draft.Category)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, DraftKey(companyID, actorID, category), payload, s.ttl).Err()
}

func (s *redisDraftStore) Get(ctx context.Context, companyID, actorID string, category Category) (CalculateResponse, error) {
	raw, err := s.rdb.Get(ctx, DraftKey(companyID, actorID, category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return CalculateResponse{}, payrollerrors.ErrDraftNotFound
	}
	if err != nil {
		return CalculateResponse{}, err
	}

	var draft CalculateResponse
	if err := json.Unmarshal(raw, &draft); err != nil {
		return CalculateResponse{}, err
	}
	return draft, nil
}

// memoryDraftStore is used when redis is not configured. Drafts live as long as the process.
type memoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]CalculateResponse
}

func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{drafts: make(map[string]CalculateResponse)}
}

func (s *memoryDraftStore) Put(_ context.Context, companyID, actorID string, draft CalculateResponse) error {
	category, err := ParseCategory(draft.Category)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts[DraftKey(companyID, actorID, category)] = draft
	s.mu.Unlock()
	return nil
}

func (s *memoryDraftStore) Get(_ context.Context, companyID, actorID string, category Category) (CalculateResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[DraftKey(companyID, actorID, category)]
	if !ok {
		return CalculateResponse{}, payrollerrors.ErrDraftNotFound
	}
	return draft, nil
}
