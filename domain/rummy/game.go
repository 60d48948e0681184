package rummy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/ledger"
)

// Game is one round of rummy at a single table. It is owned by one
// goroutine and is not safe for concurrent use.
type Game struct {
	ID          uuid.UUID
	Players     []*Player
	Deck        *deck.Deck
	Pile        deck.Pile
	CurrentTurn int
	Phase       Phase
	Winner      *Player
	Rules       Rules

	journal   *ledger.Journal
	logger    *slog.Logger
	announcer Announcer
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *slog.Logger) GameOption {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRules replaces the default table settings.
func WithRules(r Rules) GameOption {
	return func(g *Game) {
		g.Rules = r
	}
}

// WithJournal records actions into j instead of a fresh journal.
func WithJournal(j *ledger.Journal) GameOption {
	return func(g *Game) {
		g.journal = j
	}
}

// WithAnnouncer sets who speaks turn and winner announcements.
func WithAnnouncer(a Announcer) GameOption {
	return func(g *Game) {
		g.announcer = a
	}
}

// NewGame seats one player per name at a table using d.
//
// Parameters:
//   - names: player names in turn order, at least two
//   - d: the deck to deal from, large enough for every hand plus the first
//     card of the pile
//   - opts: optional settings
//
// Returns the game in PhaseDealing, or an error if the table cannot be set.
func NewGame(names []string, d *deck.Deck, opts ...GameOption) (*Game, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(names))
	}
	if d == nil {
		return nil, fmt.Errorf("no deck")
	}
	if need := HandSize*len(names) + 1; d.Len() < need {
		return nil, fmt.Errorf("deck of %d cards cannot deal %d hands: need %d", d.Len(), len(names), need)
	}

	g := &Game{
		ID:        uuid.New(),
		Deck:      d,
		Phase:     PhaseDealing,
		Rules:     DefaultRules(),
		announcer: NopAnnouncer{},
	}
	for _, name := range names {
		g.Players = append(g.Players, NewPlayer(name))
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.journal == nil {
		g.journal = ledger.NewJournal()
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.logger = g.logger.With("game", g.ID.String())
	return g, nil
}

// Deal hands HandSize cards to every player, one at a time in turn order,
// then turns the next card of the deck face up on the pile.
func (g *Game) Deal() error {
	if g.Phase != PhaseDealing {
		return fmt.Errorf("cards already dealt")
	}
	for i := 0; i < HandSize; i++ {
		for _, p := range g.Players {
			c, err := g.Deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing to %s: %w", p.Name, err)
			}
			if err := p.Hand.Add(c); err != nil {
				return fmt.Errorf("dealing to %s: %w", p.Name, err)
			}
		}
	}
	first, err := g.Deck.Draw()
	if err != nil {
		return fmt.Errorf("starting pile: %w", err)
	}
	g.Pile.Push(first)
	g.Phase = PhaseAwaitingAction

	g.logger.Info("cards dealt", "players", len(g.Players), "deck", g.Deck.Len(), "pile", first.ID())
	if _, err := g.journal.Append(ledger.Record{
		Action:    "deal",
		Outcome:   "dealt",
		CardCount: g.CardCount(),
	}); err != nil {
		g.logger.Warn("journal append failed", "error", err)
	}
	return nil
}

// Current returns the player whose turn it is.
func (g *Game) Current() *Player {
	return g.Players[g.CurrentTurn]
}

// Jokers returns the joker ranks of the game's deck.
func (g *Game) Jokers() deck.JokerSet {
	return g.Deck.Jokers()
}

// Journal returns the record of every action applied to the game.
func (g *Game) Journal() *ledger.Journal {
	return g.journal
}

// CardCount returns the number of cards in play: the deck, the pile and
// every hand. It equals Deck.Total() throughout the game.
func (g *Game) CardCount() int {
	n := g.Deck.Len() + g.Pile.Len()
	for _, p := range g.Players {
		n += p.Hand.Len()
	}
	return n
}

// PileTop renders the top card of the pile for display.
func (g *Game) PileTop() string {
	top, ok := g.Pile.Top()
	if !ok {
		return "Empty pile."
	}
	return g.Jokers().Format(top)
}

// Validate checks whether the current player may perform a in the current
// state, without changing anything.
func (g *Game) Validate(a Action) error {
	switch g.Phase {
	case PhaseOver:
		return ErrGameOver
	case PhaseDealing:
		return ErrNotDealt
	}
	hand := g.Current().Hand

	switch a.Type {
	case ActionMove:
		if _, err := g.cardInHand(a.Card); err != nil {
			return err
		}
		if a.Target != "" {
			if _, err := g.cardInHand(a.Target); err != nil {
				return err
			}
		}
	case ActionPick:
		if hand.Len() >= MaxHandSize {
			return fmt.Errorf("%w: you have %d cards, cannot pick anymore", ErrHandSize, hand.Len())
		}
		if g.Pile.Len() == 0 {
			return deck.ErrEmptyPile
		}
	case ActionTake:
		if hand.Len() >= MaxHandSize {
			return fmt.Errorf("%w: you have %d cards, cannot take anymore", ErrHandSize, hand.Len())
		}
		if g.Deck.Len() == 0 {
			return deck.ErrEmptyDeck
		}
	case ActionDrop, ActionClose:
		if hand.Len() != MaxHandSize {
			return fmt.Errorf("%w: %s needs %d cards, you have %d", ErrHandSize, a.Type, MaxHandSize, hand.Len())
		}
		if _, err := g.cardInHand(a.Card); err != nil {
			return err
		}
	case ActionSort, ActionRules:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return nil
}

// Apply validates a and performs it for the current player. Every call,
// accepted or rejected, is recorded in the journal. A rejected action
// leaves hands, deck and pile untouched.
func (g *Game) Apply(a Action) (Outcome, error) {
	var player *Player
	if len(g.Players) > 0 {
		player = g.Current()
	}
	outcome, err := g.apply(a)
	g.record(player, a, outcome, err)
	return outcome, err
}

func (g *Game) apply(a Action) (Outcome, error) {
	if err := g.Validate(a); err != nil {
		if errors.Is(err, ErrGameOver) {
			return OutcomeGameOver, err
		}
		return OutcomeContinue, err
	}
	player := g.Current()
	hand := player.Hand

	switch a.Type {
	case ActionMove:
		what, _ := deck.ParseCard(a.Card)
		var before *deck.Card
		if a.Target != "" {
			target, _ := deck.ParseCard(a.Target)
			before = &target
		}
		if err := hand.Move(what, before); err != nil {
			return OutcomeContinue, err
		}
	case ActionPick:
		c, err := g.Pile.Pop()
		if err != nil {
			return OutcomeContinue, err
		}
		if err := hand.Add(c); err != nil {
			g.Pile.Push(c)
			return OutcomeContinue, err
		}
	case ActionTake:
		c, err := g.Deck.Draw()
		if err != nil {
			return OutcomeContinue, err
		}
		if err := hand.Add(c); err != nil {
			return OutcomeContinue, fmt.Errorf("card %s lost from deck: %w", c.ID(), err)
		}
	case ActionDrop:
		c, _ := deck.ParseCard(a.Card)
		if _, err := hand.Remove(c); err != nil {
			return OutcomeContinue, err
		}
		g.Pile.Push(c)
		g.CurrentTurn = (g.CurrentTurn + 1) % len(g.Players)
		return OutcomeTurnOver, nil
	case ActionSort:
		hand.Sort()
	case ActionClose:
		c, _ := deck.ParseCard(a.Card)
		return g.close(player, c)
	case ActionRules:
	}
	return OutcomeContinue, nil
}

// close drops c on the pile and checks the remaining 13 cards. On failure
// the card goes back to the position it came from.
func (g *Game) close(player *Player, c deck.Card) (Outcome, error) {
	hand := player.Hand
	at, err := hand.Remove(c)
	if err != nil {
		return OutcomeContinue, err
	}
	g.Pile.Push(c)

	closed := false
	switch g.Rules.CloseMode {
	case CloseSearch:
		if arranged, ok := SearchClose(hand.Cards(), g.Jokers()); ok {
			hand.set(arranged)
			closed = true
		}
	default:
		closed = CanClose(hand.Cards(), g.Jokers())
	}

	if !closed {
		if _, err := g.Pile.Pop(); err != nil {
			return OutcomeContinue, fmt.Errorf("restoring %s: %w", c.ID(), err)
		}
		if err := hand.Insert(at, c); err != nil {
			return OutcomeContinue, fmt.Errorf("restoring %s: %w", c.ID(), err)
		}
		return OutcomeContinue, fmt.Errorf("%w: need three sets of three and a set of four, one of them a run without jokers", ErrInvalidClose)
	}

	g.Phase = PhaseOver
	g.Winner = player
	return OutcomeGameOver, nil
}

func (g *Game) cardInHand(id string) (deck.Card, error) {
	c, err := deck.ParseCard(id)
	if err != nil {
		return deck.Card{}, err
	}
	if !g.Current().Hand.Contains(c) {
		return deck.Card{}, fmt.Errorf("%w: %s", ErrCardNotInHand, c.ID())
	}
	return c, nil
}

func (g *Game) record(player *Player, a Action, outcome Outcome, err error) {
	r := ledger.Record{
		Action:    a,
		Err:       err,
		CardCount: g.CardCount(),
	}
	name := ""
	if player != nil {
		r.PlayerID = player.ID.String()
		name = player.Name
	}
	if err == nil {
		r.Outcome = outcome.String()
		g.logger.Info("action applied", "player", name, "action", string(a.Type), "card", a.Card, "outcome", outcome.String())
	} else {
		g.logger.Warn("action rejected", "player", name, "action", string(a.Type), "card", a.Card, "error", err)
	}
	if _, jerr := g.journal.Append(r); jerr != nil {
		g.logger.Error("journal append failed", "error", jerr)
	}
}
