package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the TUI. Colors are ANSI 256
// codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Focused element.
	FocusBackground lipgloss.Color
	FocusForeground lipgloss.Color

	// Button kinds, keyed by the class the view gives them.
	PrimaryBackground lipgloss.Color
	DangerBackground  lipgloss.Color
	ButtonForeground  lipgloss.Color
	LinkForeground    lipgloss.Color

	// Cards and the form.
	CardBorder  lipgloss.Color
	FormBorder  lipgloss.Color
	InputBack   lipgloss.Color
	AnswerText  lipgloss.Color
	HeaderText  lipgloss.Color
	WarningText lipgloss.Color
	ErrorText   lipgloss.Color
	HelpText    lipgloss.Color
}

// DefaultTheme is a dark palette, yellow cards on a plain background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),

	FocusBackground: lipgloss.Color("214"),
	FocusForeground: lipgloss.Color("16"),

	PrimaryBackground: lipgloss.Color("62"),
	DangerBackground:  lipgloss.Color("124"),
	ButtonForeground:  lipgloss.Color("231"),
	LinkForeground:    lipgloss.Color("75"),

	CardBorder:  lipgloss.Color("185"),
	FormBorder:  lipgloss.Color("62"),
	InputBack:   lipgloss.Color("236"),
	AnswerText:  lipgloss.Color("150"),
	HeaderText:  lipgloss.Color("212"),
	WarningText: lipgloss.Color("214"),
	ErrorText:   lipgloss.Color("196"),
	HelpText:    lipgloss.Color("241"),
}
