package rummy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrHandSize is returned when an action needs a different hand size.
	ErrHandSize = errors.New("hand size violation")
	// ErrCardNotInHand is returned when a named card is not held.
	ErrCardNotInHand = errors.New("card not in hand")
	// ErrInvalidClose is returned when a close attempt does not form four sets.
	ErrInvalidClose = errors.New("hand does not close")
	// ErrGameOver is returned for any action after a successful close.
	ErrGameOver = errors.New("game is over")
	// ErrNotDealt is returned for actions before the cards are dealt.
	ErrNotDealt = errors.New("cards not dealt")
	// ErrUnknownAction is returned for an unrecognised action symbol.
	ErrUnknownAction = errors.New("unknown action")
)

// ActionType is a request a player can make during their turn.
type ActionType string

const (
	ActionMove  ActionType = "move"
	ActionPick  ActionType = "pick" // take the top card of the pile
	ActionTake  ActionType = "take" // take the top card of the deck
	ActionDrop  ActionType = "drop"
	ActionSort  ActionType = "sort"
	ActionClose ActionType = "close"
	ActionRules ActionType = "rules"
)

// ActionTypes lists the actions in menu order.
var ActionTypes = []ActionType{ActionMove, ActionPick, ActionTake, ActionDrop, ActionSort, ActionClose, ActionRules}

var menuLetters = map[string]ActionType{
	"M": ActionMove,
	"P": ActionPick,
	"T": ActionTake,
	"D": ActionDrop,
	"S": ActionSort,
	"C": ActionClose,
	"R": ActionRules,
}

// ParseActionType accepts a menu letter (M, P, T, D, S, C, R) or an action
// name, in any case.
func ParseActionType(s string) (ActionType, error) {
	s = strings.TrimSpace(s)
	if a, ok := menuLetters[strings.ToUpper(s)]; ok {
		return a, nil
	}
	for _, a := range ActionTypes {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Label is the menu text for the action.
func (a ActionType) Label() string {
	switch a {
	case ActionMove:
		return "(M)ove cards"
	case ActionPick:
		return "(P)ick from pile"
	case ActionTake:
		return "(T)ake from deck"
	case ActionDrop:
		return "(D)rop"
	case ActionSort:
		return "(S)ort"
	case ActionClose:
		return "(C)lose game"
	case ActionRules:
		return "(R)ules"
	default:
		return string(a)
	}
}

// NeedsCard reports whether the action names a card from the hand.
func (a ActionType) NeedsCard() bool {
	return a == ActionMove || a == ActionDrop || a == ActionClose
}

// Action is one request from the input side. Card and Target are card
// identifiers such as "4H"; Target is only used by ActionMove and may be
// empty to move the card to the end of the hand.
type Action struct {
	Type   ActionType `json:"type"`
	Card   string     `json:"card,omitempty"`
	Target string     `json:"target,omitempty"`
}

// Outcome tells the turn loop what happens after an action.
type Outcome int

const (
	// OutcomeContinue keeps the turn with the same player.
	OutcomeContinue Outcome = iota
	// OutcomeTurnOver passes the turn to the next player.
	OutcomeTurnOver
	// OutcomeGameOver ends the round; the acting player won.
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeTurnOver:
		return "turn over"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle state of a game.
type Phase string

const (
	PhaseDealing        Phase = "dealing"
	PhaseAwaitingAction Phase = "awaiting_action"
	PhaseOver           Phase = "over"
)

// CloseMode selects how a close attempt is checked.
type CloseMode string

const (
	// ClosePositional reads the hand as groups [0:3] [3:6] [6:9] [9:13].
	ClosePositional CloseMode = "positional"
	// CloseSearch accepts any arrangement of the hand into four sets.
	CloseSearch CloseMode = "search"
)

// ParseCloseMode validates a close mode name. The empty string selects
// ClosePositional.
func ParseCloseMode(s string) (CloseMode, error) {
	switch CloseMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ClosePositional:
		return ClosePositional, nil
	case CloseSearch:
		return CloseSearch, nil
	}
	return "", fmt.Errorf("unknown close mode %q", s)
}

// Rules holds the table settings of a game.
type Rules struct {
	CloseMode CloseMode
}

// DefaultRules returns the standard table settings.
func DefaultRules() Rules {
	return Rules{CloseMode: ClosePositional}
}

// Player is a seat at the table.
type Player struct {
	ID   uuid.UUID
	Name string
	Hand *Hand
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: name,
		Hand: NewHand(),
	}
}
