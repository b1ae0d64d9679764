package scoring

import (
	"github.com/mcoot/rummy500-go/internal/model"
)

// Service applies round scoring and decides when a game is won
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ApplyRoundScores updates every player's running score for a finished
// round: melded points, minus hand points for everyone except the player
// who went out. Returns the resulting totals keyed by player.
func (s *Service) ApplyRoundScores(game *model.Game, wentOut model.PlayerID) map[model.PlayerID]int {
	scores := make(map[model.PlayerID]int, len(game.Players))
	for _, p := range game.Players {
		p.ApplyRoundScore(p.ID == wentOut)
		scores[p.ID] = p.Score
	}
	return scores
}

// TargetReached reports whether any player's score meets or exceeds the
// game's score target
func (s *Service) TargetReached(game *model.Game) bool {
	for _, p := range game.Players {
		if p.Score >= game.ScoreTarget {
			return true
		}
	}
	return false
}

// DetermineWinner returns the highest-scoring player's ID; ties go to the
// earliest-registered player
func (s *Service) DetermineWinner(game *model.Game) model.PlayerID {
	best := game.HighestScorer()
	if best == nil {
		return ""
	}
	return best.ID
}

// Interface for dependency injection
type ServiceInterface interface {
	ApplyRoundScores(game *model.Game, wentOut model.PlayerID) map[model.PlayerID]int
	TargetReached(game *model.Game) bool
	DetermineWinner(game *model.Game) model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
