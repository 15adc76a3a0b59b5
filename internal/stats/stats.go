package stats

import (
	"sort"
	"sync"
	"time"
)

// In-memory match tallies keyed by display name. The sim loop writes on
// every elimination; the leaderboard endpoints read concurrently, hence the
// mutex even though gameplay itself is single-threaded.
var (
	mu      sync.Mutex
	tallies = make(map[string]*Tally)
	// Per-day top eliminator (date string YYYY-MM-DD UTC).
	dailyTop = make(map[string]DailyTop)
)

type Tally struct {
	Name   string `json:"name"`
	Kills  int    `json:"kills"`
	Deaths int    `json:"deaths"`
	Wins   int    `json:"wins"`
}

type DailyTop struct {
	Date  string `json:"date"`
	Name  string `json:"name"`
	Kills int    `json:"kills"`
}

func dateKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

func get(name string) *Tally {
	t, ok := tallies[name]
	if !ok {
		t = &Tally{Name: name}
		tallies[name] = t
	}
	return t
}

// RecordKill tallies one elimination for the killer and one death for the
// victim, and advances today's top-eliminator record if beaten.
func RecordKill(killer, victim string) {
	mu.Lock()
	defer mu.Unlock()
	k := get(killer)
	k.Kills++
	get(victim).Deaths++

	day := dateKey()
	cur, ok := dailyTop[day]
	if !ok || k.Kills > cur.Kills {
		dailyTop[day] = DailyTop{Date: day, Name: killer, Kills: k.Kills}
	}
}

// RecordDeath tallies a death with no corresponding kill credit, for
// eliminations whose shooter is no longer known.
func RecordDeath(victim string) {
	mu.Lock()
	defer mu.Unlock()
	get(victim).Deaths++
}

// RecordWin tallies one match win.
func RecordWin(name string) {
	mu.Lock()
	defer mu.Unlock()
	get(name).Wins++
}

// Leaderboard returns all tallies sorted by kills, then wins, then name for
// a stable order.
func Leaderboard() []Tally {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Tally, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kills != out[j].Kills {
			return out[i].Kills > out[j].Kills
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Today returns today's top-eliminator record, zero-valued when nobody has
// scored yet.
func Today() DailyTop {
	mu.Lock()
	defer mu.Unlock()
	return dailyTop[dateKey()]
}

// Reset clears everything. Intended for tests and dev convenience.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	tallies = make(map[string]*Tally)
	dailyTop = make(map[string]DailyTop)
}
