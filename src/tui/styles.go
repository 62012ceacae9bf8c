package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	muted     lipgloss.Color
	panel     lipgloss.Color
	border    lipgloss.Color
	cursor    lipgloss.Color
	success   lipgloss.Color
	failure   lipgloss.Color
	buttonOn  lipgloss.Color
	buttonOff lipgloss.Color
}

var (
	lightPalette = palette{
		accent:    lipgloss.Color("92"),
		text:      lipgloss.Color("236"),
		muted:     lipgloss.Color("243"),
		panel:     lipgloss.Color("255"),
		border:    lipgloss.Color("250"),
		cursor:    lipgloss.Color("225"),
		success:   lipgloss.Color("34"),
		failure:   lipgloss.Color("160"),
		buttonOn:  lipgloss.Color("92"),
		buttonOff: lipgloss.Color("252"),
	}
	darkPalette = palette{
		accent:    lipgloss.Color("141"),
		text:      lipgloss.Color("252"),
		muted:     lipgloss.Color("245"),
		panel:     lipgloss.Color("236"),
		border:    lipgloss.Color("240"),
		cursor:    lipgloss.Color("238"),
		success:   lipgloss.Color("42"),
		failure:   lipgloss.Color("203"),
		buttonOn:  lipgloss.Color("98"),
		buttonOff: lipgloss.Color("239"),
	}
)

type styles struct {
	title   lipgloss.Style
	link    lipgloss.Style
	theme   lipgloss.Style
	intro   lipgloss.Style
	heading lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	checked lipgloss.Style
	cursor  lipgloss.Style
	button  lipgloss.Style
	active  lipgloss.Style
	result  lipgloss.Style
	body    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	help    lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		link:    lipgloss.NewStyle().Foreground(p.muted).Underline(true),
		theme:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		intro:   lipgloss.NewStyle().Foreground(p.muted),
		heading: lipgloss.NewStyle().Bold(true).Foreground(p.text),
		section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(p.text),
		checked: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		cursor:  lipgloss.NewStyle().Background(p.cursor),
		button: lipgloss.NewStyle().
			Padding(0, 2).
			Background(p.buttonOff).
			Foreground(p.text),
		active: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Background(p.buttonOn).
			Foreground(lipgloss.Color("255")),
		result: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		body:    lipgloss.NewStyle().Foreground(p.text),
		success: lipgloss.NewStyle().Foreground(p.success),
		failure: lipgloss.NewStyle().Foreground(p.failure),
		help:    lipgloss.NewStyle().Faint(true),
	}
}
