// Package session holds the console's single process-wide state container.
// All mutation goes through named transition functions so view handlers stay
// deterministic and testable.
package session

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"inquest/internal/api"
	"inquest/internal/util/logx"
	"inquest/internal/views"
)

// RecentCap is the fixed size of the recent-entities list.
const RecentCap = 8

const recentKey = "recent"

// Entity is one row of the recent-entities list.
type Entity struct {
	ID       string
	Name     string
	LastSeen string
}

// DisplayName falls back to UNKNOWN for unnamed entities.
func (e Entity) DisplayName() string {
	if e.Name == "" {
		return "UNKNOWN"
	}
	return e.Name
}

// State is the console's session state: current view, current entity, retained
// search params, last envelope and the recent-entities cache. Lifetime is
// the application's; it is only ever touched from the update loop.
type State struct {
	View         views.View
	Entity       string
	SearchParams map[string]string
	Last         *api.Envelope

	gen    uint64
	recent *gocache.Cache
}

func New() *State {
	return &State{
		View: views.Home,
		// Recent listings go stale; let them expire if never refreshed.
		recent: gocache.New(10*time.Minute, 30*time.Minute),
	}
}

// SetView transitions to a view without touching the entity.
func (s *State) SetView(v views.View) {
	if s.View != v {
		logx.Debugf("session: view %s -> %s", s.View.Name(), v.Name())
	}
	s.View = v
}

// SelectEntity records the current entity; it persists across view changes
// until overwritten.
func (s *State) SelectEntity(id string) {
	if id == "" {
		return
	}
	s.Entity = id
	logx.Debugf("session: entity=%s", id)
}

// HandOff is the entity-carrying transition used by ask actions and recent
// selection: selects the entity, then moves to the view.
func (s *State) HandOff(v views.View, entity string) {
	s.SelectEntity(entity)
	s.SetView(v)
}

// RetainSearch stores the merged parameter set of the last search run so
// pagination reuses the same filters.
func (s *State) RetainSearch(params map[string]string) {
	s.SearchParams = params
}

// NextGen advances the request generation and returns the value the new
// request should capture.
func (s *State) NextGen() uint64 {
	s.gen++
	return s.gen
}

// Accept records a completed response. It returns false, leaving state
// untouched, when a newer request has been dispatched since gen was
// captured: both requests resolve, the stale one is discarded.
func (s *State) Accept(gen uint64, env *api.Envelope) bool {
	if gen != s.gen {
		logx.Debugf("session: dropping stale response gen=%d current=%d", gen, s.gen)
		return false
	}
	s.Last = env
	return true
}

// SetRecent replaces the recent-entities list wholesale, capped at
// RecentCap. No incremental merge.
func (s *State) SetRecent(list []Entity) {
	if len(list) > RecentCap {
		list = list[:RecentCap]
	}
	s.recent.Set(recentKey, list, gocache.DefaultExpiration)
}

// Recent returns the cached list; empty once expired or never fetched.
func (s *State) Recent() []Entity {
	v, ok := s.recent.Get(recentKey)
	if !ok {
		return nil
	}
	list, _ := v.([]Entity)
	return list
}

// RecentFromEnvelope reads an /entities listing into the cache. Returns the
// stored list.
func (s *State) RecentFromEnvelope(env *api.Envelope) []Entity {
	var list []Entity
	for _, it := range env.List("entities") {
		row, ok := it.(map[string]any)
		if !ok {
			continue
		}
		e := Entity{}
		switch id := row["player_id"].(type) {
		case string:
			e.ID = id
		case float64:
			e.ID = strconv.Itoa(int(id))
		}
		e.Name, _ = row["name"].(string)
		e.LastSeen, _ = row["last_seen"].(string)
		if e.ID == "" {
			continue
		}
		list = append(list, e)
	}
	s.SetRecent(list)
	return s.Recent()
}
