package fundstore

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/aestimo/internal/models"
)

// cachedStore is a read-through TTL cache over another store. Successful
// lookups are cached; failures are not, so transient backend errors retry
// on the next request.
type cachedStore struct {
	inner Store
	ttl   time.Duration
	now   func() time.Time

	mu        sync.RWMutex
	rows      map[string]cachedRows
	companies *cachedCompanies
}

type cachedRows struct {
	rows    []models.FundamentalRow
	expires time.Time
}

type cachedCompanies struct {
	infos   []models.CompanyInfo
	expires time.Time
}

// NewCachedStore wraps inner with a TTL cache. A non-positive ttl returns
// inner unchanged.
func NewCachedStore(inner Store, ttl time.Duration) Store {
	if ttl <= 0 {
		return inner
	}
	return &cachedStore{
		inner: inner,
		ttl:   ttl,
		now:   time.Now,
		rows:  make(map[string]cachedRows),
	}
}

func (s *cachedStore) Companies(ctx context.Context) ([]models.CompanyInfo, error) {
	s.mu.RLock()
	cached := s.companies
	s.mu.RUnlock()

	if cached != nil && s.now().Before(cached.expires) {
		return copyInfos(cached.infos), nil
	}

	infos, err := s.inner.Companies(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.companies = &cachedCompanies{infos: copyInfos(infos), expires: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return infos, nil
}

func (s *cachedStore) Rows(ctx context.Context, company string) ([]models.FundamentalRow, error) {
	key := companyKey(company)

	s.mu.RLock()
	entry, ok := s.rows[key]
	s.mu.RUnlock()

	if ok && s.now().Before(entry.expires) {
		return copyRows(entry.rows), nil
	}

	rows, err := s.inner.Rows(ctx, company)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rows[key] = cachedRows{rows: copyRows(rows), expires: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return rows, nil
}

func copyRows(rows []models.FundamentalRow) []models.FundamentalRow {
	out := make([]models.FundamentalRow, len(rows))
	copy(out, rows)
	return out
}

func copyInfos(infos []models.CompanyInfo) []models.CompanyInfo {
	out := make([]models.CompanyInfo, len(infos))
	copy(out, infos)
	return out
}
