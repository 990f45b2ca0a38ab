package memory

import (
	"strings"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InterestRepository remembers the most recent search of each signed-in
// user so freshly published reports can be pushed to whoever was just
// looking for something like them. Interests expire after 24 hours.
type InterestRepository struct {
	cache *cache.Cache
}

func NewInterestRepository() *InterestRepository {
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &InterestRepository{
		cache: c,
	}
}

func (r *InterestRepository) Save(userID uuid.UUID, params lostfound.SearchParams) {
	if params.IsZero() {
		return
	}
	r.cache.Set(userID.String(), params, cache.DefaultExpiration)
}

// Matching returns the users whose last search is compatible with the
// given report: a constraint they set (type, city) must agree, a
// constraint they left open matches anything.
func (r *InterestRepository) Matching(reportType lostfound.ReportType, city string) []uuid.UUID {
	var matched []uuid.UUID
	for key, item := range r.cache.Items() {
		params, ok := item.Object.(lostfound.SearchParams)
		if !ok {
			continue
		}
		if params.Type != "" && params.Type != reportType {
			continue
		}
		if params.City != "" && !strings.EqualFold(params.City, city) {
			continue
		}
		uid, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		matched = append(matched, uid)
	}
	return matched
}

func (r *InterestRepository) Delete(userID uuid.UUID) {
	r.cache.Delete(userID.String())
}
