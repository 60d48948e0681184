package rummy

import (
	"fmt"
)

// TurnView is what the acting player gets to see.
type TurnView struct {
	Player   string
	Hand     string
	HandSize int
	PileTop  string
	// Indicator is the card that set the joker rank, empty when the game
	// has no jokers.
	Indicator string
}

// Input supplies the next action of the acting player.
type Input interface {
	NextAction(view TurnView) (Action, error)
}

// Output presents the game to the players.
type Output interface {
	ShowTurn(view TurnView)
	Error(err error)
	ShowRules(text string)
	// TurnOver is called between turns, before next plays.
	TurnOver(next string)
	AnnounceWinner(name, hand string)
}

// Announcer speaks short messages aloud.
type Announcer interface {
	Say(text string)
}

// NopAnnouncer stays silent.
type NopAnnouncer struct{}

func (NopAnnouncer) Say(string) {}

// View returns the state shown to the current player.
func (g *Game) View() TurnView {
	p := g.Current()
	v := TurnView{
		Player:   p.Name,
		Hand:     p.Hand.Format(g.Jokers()),
		HandSize: p.Hand.Len(),
		PileTop:  g.PileTop(),
	}
	if ind, ok := g.Deck.Indicator(); ok {
		v.Indicator = ind.String()
	}
	return v
}

// PlayTurn runs the current player's turn: it shows the table, asks for an
// action and applies it until the turn passes or the game ends. Rejected
// actions are reported to out and the player is asked again. Only a failure
// of in stops the loop early.
func (g *Game) PlayTurn(in Input, out Output) (Outcome, error) {
	switch g.Phase {
	case PhaseDealing:
		return OutcomeContinue, ErrNotDealt
	case PhaseOver:
		return OutcomeGameOver, ErrGameOver
	}
	g.announcer.Say(fmt.Sprintf("%s, it is your turn", g.Current().Name))

	for {
		view := g.View()
		out.ShowTurn(view)
		a, err := in.NextAction(view)
		if err != nil {
			return OutcomeContinue, fmt.Errorf("reading action of %s: %w", view.Player, err)
		}
		outcome, err := g.Apply(a)
		if err != nil {
			out.Error(err)
			continue
		}
		switch {
		case outcome != OutcomeContinue:
			return outcome, nil
		case a.Type == ActionRules:
			out.ShowRules(RulesText)
		}
	}
}

// Play runs turns round-robin until a player closes, then announces and
// returns the winner.
func (g *Game) Play(in Input, out Output) (*Player, error) {
	for {
		outcome, err := g.PlayTurn(in, out)
		if err != nil {
			return nil, err
		}
		if outcome == OutcomeGameOver {
			break
		}
		out.TurnOver(g.Current().Name)
	}

	hand := g.Winner.Hand.Format(g.Jokers())
	g.logger.Info("game over", "winner", g.Winner.Name, "hand", hand)
	g.announcer.Say(fmt.Sprintf("%s wins the game", g.Winner.Name))
	out.AnnounceWinner(g.Winner.Name, hand)
	return g.Winner, nil
}
