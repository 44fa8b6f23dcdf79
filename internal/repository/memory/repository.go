package memory

import (
	"sync"
	"time"

	"github.com/sutariaa/fantsay-football-predictor/internal/models"
	"github.com/sutariaa/fantsay-football-predictor/internal/trade"
)

// HistoryCap bounds the retained trade evaluations, most recent first.
const HistoryCap = 20

// Repository is the in-memory snapshot store: the active league
// settings, the favorite team, the cached player directory and a
// bounded trade history. Persistence durability is a non-goal; the
// store only outlives individual computations within one process.
type Repository struct {
	mu sync.RWMutex

	settings models.LeagueSettings
	favorite string

	directory        []models.PlayerProjection
	directoryUpdated time.Time

	history []trade.Record
}

func NewRepository(settings models.LeagueSettings) *Repository {
	return &Repository{settings: settings}
}

func (r *Repository) Settings() models.LeagueSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

func (r *Repository) SaveSettings(settings models.LeagueSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
}

func (r *Repository) Favorite() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.favorite
}

func (r *Repository) SetFavorite(abbr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorite = abbr
}

func (r *Repository) ClearFavorite() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorite = ""
}

func (r *Repository) SaveDirectory(players []models.PlayerProjection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.directory = players
	r.directoryUpdated = time.Now()
}

func (r *Repository) Directory() ([]models.PlayerProjection, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.directory, r.directoryUpdated
}

// AddTradeRecord prepends a record, trimming the history to HistoryCap.
func (r *Repository) AddTradeRecord(rec trade.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append([]trade.Record{rec}, r.history...)
	if len(r.history) > HistoryCap {
		r.history = r.history[:HistoryCap]
	}
}

func (r *Repository) TradeHistory() []trade.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]trade.Record, len(r.history))
	copy(out, r.history)
	return out
}
