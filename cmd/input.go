package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/rummy"
)

// terminalInput asks the player at the keyboard for their next action.
type terminalInput struct {
	selectOption func(prompt string, options []string) (string, error)
	readText     func(prompt string) (string, error)
}

func newTerminalInput() *terminalInput {
	return &terminalInput{
		selectOption: func(prompt string, options []string) (string, error) {
			return pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(options).WithMaxHeight(len(options)).Show()
		},
		readText: func(prompt string) (string, error) {
			return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		},
	}
}

func actionLabels() []string {
	labels := make([]string, len(rummy.ActionTypes))
	for i, a := range rummy.ActionTypes {
		labels[i] = a.Label()
	}
	return labels
}

func actionFromLabel(label string) (rummy.ActionType, error) {
	for _, a := range rummy.ActionTypes {
		if a.Label() == label {
			return a, nil
		}
	}
	return rummy.ParseActionType(label)
}

func (t *terminalInput) NextAction(view rummy.TurnView) (rummy.Action, error) {
	label, err := t.selectOption(fmt.Sprintf("%s, select your next action", view.Player), actionLabels())
	if err != nil {
		return rummy.Action{}, err
	}
	typ, err := actionFromLabel(label)
	if err != nil {
		return rummy.Action{}, err
	}
	a := rummy.Action{Type: typ}

	switch typ {
	case rummy.ActionMove:
		if a.Card, err = t.readCard("Which card would you like to move? (e.g. 4H)", false); err != nil {
			return rummy.Action{}, err
		}
		if a.Target, err = t.readCard("Move it before which card? Leave empty for the end", true); err != nil {
			return rummy.Action{}, err
		}
	case rummy.ActionDrop, rummy.ActionClose:
		if a.Card, err = t.readCard("Which card would you like to drop? Rank followed by suit initial, e.g. 4H", false); err != nil {
			return rummy.Action{}, err
		}
	}
	return a, nil
}

// readCard asks until the answer is a well formed card identifier, or
// empty when allowed.
func (t *terminalInput) readCard(prompt string, allowEmpty bool) (string, error) {
	for {
		answer, err := t.readText(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(answer) == "" && allowEmpty {
			return "", nil
		}
		c, err := deck.ParseCard(answer)
		if err != nil {
			pterm.Error.Printfln("Not a valid card: %q", answer)
			continue
		}
		return c.ID(), nil
	}
}
