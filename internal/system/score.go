// internal/system/score.go
package system

import (
	"slices"

	"tank-arena/internal/event"
	"tank-arena/internal/logging"

	"github.com/rs/zerolog"
)

// MatchScorer считает очки игроков и объявляет победителя по порогу.
// Сброс — внешняя команда (Reset).
type MatchScorer struct {
	ctx        *Context
	scores     map[int]int
	winner     int
	scoreToWin int
	log        zerolog.Logger
}

// NewMatchScorer subscribes the scorer to applied-damage events.
func NewMatchScorer(ctx *Context) *MatchScorer {
	ms := &MatchScorer{
		ctx:        ctx,
		scores:     make(map[int]int),
		scoreToWin: ctx.Tuning.Match.ScoreToWin,
		log:        logging.For(ctx.Log, "score"),
	}
	ctx.Dispatcher.Subscribe(event.TankDamaged, ms)
	return ms
}

// OnEvent начисляет очко стрелку за каждое применённое попадание по врагу.
func (ms *MatchScorer) OnEvent(e event.Event) {
	if e.Type != event.TankDamaged {
		return
	}
	hit, ok := e.Data.(event.HitPayload)
	if !ok || hit.Shooter == 0 || hit.Shooter == hit.Victim {
		return
	}
	ms.Award(hit.Shooter, 1)
}

// Award прибавляет очки игроку. После объявления победителя очки не меняются.
func (ms *MatchScorer) Award(playerNumber, amount int) {
	if ms.winner != 0 || amount <= 0 {
		return
	}
	ms.scores[playerNumber] += amount
	score := ms.scores[playerNumber]

	if _, tank, ok := ms.ctx.ECS.TankByPlayer(playerNumber); ok {
		tank.Score = score
	}
	ms.ctx.Presenter.ShowScore(playerNumber, score)
	ms.ctx.dispatch(event.ScoreChanged, event.ScorePayload{Player: playerNumber, Score: score})
	ms.log.Info().Int("player", playerNumber).Int("score", score).Msg("score changed")

	if score >= ms.scoreToWin {
		ms.winner = playerNumber
		ms.ctx.Presenter.MatchOver(playerNumber)
		ms.ctx.dispatch(event.MatchWon, event.MatchPayload{Winner: playerNumber, Scores: ms.Scores()})
		ms.log.Info().Int("winner", playerNumber).Msg("match won")
	}
}

// Score returns the current score of a player.
func (ms *MatchScorer) Score(playerNumber int) int {
	return ms.scores[playerNumber]
}

// Winner returns the declared winner, 0 while the match is running.
func (ms *MatchScorer) Winner() int {
	return ms.winner
}

// Scores returns a copy of every player's score.
func (ms *MatchScorer) Scores() map[int]int {
	out := make(map[int]int, len(ms.scores))
	for p, s := range ms.scores {
		out[p] = s
	}
	return out
}

// Reset обнуляет счёт и снимает победителя.
func (ms *MatchScorer) Reset() {
	players := make([]int, 0, len(ms.scores)+len(ms.ctx.ECS.Tanks))
	for p := range ms.scores {
		players = append(players, p)
	}
	for _, tank := range ms.ctx.ECS.Tanks {
		tank.Score = 0
		players = append(players, tank.PlayerNumber)
	}
	slices.Sort(players)
	players = slices.Compact(players)

	ms.scores = make(map[int]int)
	ms.winner = 0
	for _, p := range players {
		ms.ctx.Presenter.ShowScore(p, 0)
	}
}
