package game

import (
	"log"
	"time"

	"crossfire/internal/protocol"
	"crossfire/internal/stats"
)

// unknownKiller is the display fallback when a bullet's owner disconnected
// before its elimination landed.
const unknownKiller = "Unknown"

// scanHit returns the first qualifying victim for the bullet, or nil. A hit
// requires an alive player other than the shooter, not on the bullet's
// firing team, within hitRadius. Candidates are checked in player insertion
// order; when two players are equally close, the earlier joiner wins the
// hit. The team filter works off OwnerTeam so it holds after the shooter
// disconnects.
func (r *Room) scanHit(b *Bullet) *Player {
	for _, p := range r.players {
		if !p.Alive {
			continue
		}
		if p.ID == b.OwnerID {
			continue
		}
		if p.Team == b.OwnerTeam {
			continue
		}
		if b.Position.DistanceTo(p.Position) < hitRadius {
			return p
		}
	}
	return nil
}

// resolveHit applies damage, handles elimination, scoring, the victory
// check, and respawn scheduling. Score mutation stops once the room has
// ended, except for the one-time victory bonus granted inside checkVictory.
func (r *Room) resolveHit(b *Bullet, victim *Player, now time.Time) {
	victim.Health -= b.Damage
	if victim.Health < 0 {
		victim.Health = 0
	}
	r.broadcast(protocol.NewPlayerHit(victim.ID, b.OwnerID, b.Damage, b.Weapon, victim.Health))
	if victim.Health > 0 {
		return
	}

	victim.Alive = false
	shooter := r.playersByID[b.OwnerID]
	killerName := unknownKiller
	if shooter != nil {
		killerName = shooter.Name
	}
	log.Printf("room %s: %s eliminated by %s (%s)", r.Code, victim.ID, b.OwnerID, b.Weapon)
	r.broadcast(protocol.NewPlayerEliminated(victim.ID, b.OwnerID, killerName))
	if shooter != nil {
		stats.RecordKill(shooter.Name, victim.Name)
	} else {
		// No kill credit for a departed shooter; the display fallback must
		// not become a leaderboard entry.
		stats.RecordDeath(victim.Name)
	}

	if !r.ended && shooter != nil {
		shooter.Score += KillScore
		r.scores[shooter.Team]++
		r.broadcast(protocol.NewTeamScores(r.scores[TeamBlue], r.scores[TeamRed]))
		r.checkVictory()
	}

	r.respawns = append(r.respawns, pendingRespawn{
		playerID: victim.ID,
		due:      now.Add(RespawnDelay),
	})
}

// checkVictory runs only immediately after a score change, never on the
// plain tick path. Reaching the limit ends the room permanently and grants
// every winning-team member the one-time bonus.
func (r *Room) checkVictory() {
	for _, team := range []Team{TeamBlue, TeamRed} {
		if r.scores[team] < r.scoreLimit {
			continue
		}
		r.ended = true
		r.winner = team
		log.Printf("room %s: team %s wins %d-%d", r.Code, team, r.scores[TeamBlue], r.scores[TeamRed])
		r.broadcast(protocol.NewTeamVictory(string(team), r.scores[TeamBlue], r.scores[TeamRed], VictoryBonus))
		for _, p := range r.players {
			if p.Team == team {
				p.Score += VictoryBonus
				stats.RecordWin(p.Name)
			}
		}
		return
	}
}
