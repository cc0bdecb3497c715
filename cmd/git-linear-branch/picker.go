package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrbonezy/git-linear-branch/branch"
	"github.com/mrbonezy/git-linear-branch/ui"
)

const pickerPrefixWidth = 28

var errPickAborted = errors.New("no prefix selected")
var errPickNeedsTerminal = errors.New("--pick needs an interactive terminal")

func glbHuhTheme() *huh.Theme {
	t := *huh.ThemeCharm()
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(lipgloss.Color("#7D56F4"))
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color("#7D56F4"))
	return &t
}

func newPrefixPickerForm(rows []ui.BranchRow, styles ui.Styles, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(rows))
	for _, row := range rows {
		options = append(options, huh.NewOption(ui.PickerLabel(row, pickerPrefixWidth, styles), row.Prefix))
	}
	sel := huh.NewSelect[string]().
		Title("Branch prefix").
		Options(options...).
		Value(result)

	return huh.NewForm(huh.NewGroup(sel)).
		WithTheme(glbHuhTheme()).
		WithShowHelp(false).
		WithProgramOptions(tea.WithOutput(os.Stderr))
}

// pickPrefix asks the user to choose one of rows, which are expected to be in
// most-recent-first order.
func pickPrefix(rows []ui.BranchRow, styles ui.Styles) (string, error) {
	if len(rows) == 0 {
		return "", branch.ErrNoBranchesSaved
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return "", errPickNeedsTerminal
	}
	chosen := rows[0].Prefix
	if err := newPrefixPickerForm(rows, styles, &chosen).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errPickAborted
		}
		return "", err
	}
	return chosen, nil
}
