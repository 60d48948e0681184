package main

import (
	"github.com/pterm/pterm"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/rummy"
)

// terminalOutput draws the table with pterm.
type terminalOutput struct {
	// waitEnter blocks until the next player is at the keyboard.
	waitEnter func(prompt string)
}

func newTerminalOutput() *terminalOutput {
	return &terminalOutput{
		waitEnter: func(prompt string) {
			_, _ = pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		},
	}
}

func getHandPanel(view rummy.TurnView) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.BgGreen.Sprint(" " + view.Hand + " ")
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan(view.Player)).WithTitleTopLeft().Sprintf("%s\nCards: %d\n", hand, view.HandSize)}
}

func getPilePanel(view rummy.TurnView) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Top of the pile: %s", view.PileTop)
	if view.Indicator != "" {
		info += pterm.Sprintfln("Joker indicator: %s", view.Indicator)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(info)}
}

func getWinnerPanel(name, hand string) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("%s closed the game with\n%s", pterm.LightCyan(name), hand)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Sprint(info)}
}

func (o *terminalOutput) ShowTurn(view rummy.TurnView) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{getPilePanel(view)},
		{getHandPanel(view)},
	}).Render()
}

func (o *terminalOutput) Error(err error) {
	pterm.Error.Println(err.Error())
}

func (o *terminalOutput) ShowRules(text string) {
	pterm.DefaultBox.WithTitle(pterm.LightYellow("|RULES|")).WithTitleTopCenter().Println(text)
	o.waitEnter("Enter to continue ...")
}

func (o *terminalOutput) TurnOver(next string) {
	pterm.Println()
	o.waitEnter(pterm.Sprintf("Pass the keyboard to %s and hit enter", pterm.LightCyan(next)))
	pterm.Print("\033[H\033[2J")
}

func (o *terminalOutput) AnnounceWinner(name, hand string) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getWinnerPanel(name, hand)}}).Render()
}

// terminalAnnouncer prints what a voice would say.
type terminalAnnouncer struct{}

func (terminalAnnouncer) Say(text string) {
	pterm.Info.Println(text)
}
