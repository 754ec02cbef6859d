package tui

import (
	"context"
	"log"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/consistency21/internal/config"
	"github.com/verte-zerg/consistency21/internal/stats"
)

// ThemeKey is the store key holding the theme preference.
const ThemeKey = "consistency21_theme"

// PrefStore persists small UI preferences.
type PrefStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	subtle  lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
}

var palettes = map[config.Theme]palette{
	config.ThemeDark: {
		text:    lipgloss.Color("#F8FAFC"),
		muted:   lipgloss.Color("#94A3B8"),
		subtle:  lipgloss.Color("#475569"),
		accent:  lipgloss.Color("#818CF8"),
		border:  lipgloss.Color("#334155"),
		success: lipgloss.Color("#34D399"),
		warning: lipgloss.Color("#FBBF24"),
		danger:  lipgloss.Color("#F87171"),
	},
	config.ThemeLight: {
		text:    lipgloss.Color("#1E293B"),
		muted:   lipgloss.Color("#64748B"),
		subtle:  lipgloss.Color("#CBD5E1"),
		accent:  lipgloss.Color("#4F46E5"),
		border:  lipgloss.Color("#CBD5E1"),
		success: lipgloss.Color("#059669"),
		warning: lipgloss.Color("#D97706"),
		danger:  lipgloss.Color("#DC2626"),
	},
}

type styles struct {
	pal palette

	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	danger    lipgloss.Style
	help      lipgloss.Style
	cell      lipgloss.Style
	cellFocus lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	cardValue lipgloss.Style
	modal     lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	pal, ok := palettes[theme]
	if !ok {
		pal = palettes[config.ThemeDark]
	}
	return styles{
		pal:     pal,
		title:   lipgloss.NewStyle().Foreground(pal.accent).Bold(true),
		text:    lipgloss.NewStyle().Foreground(pal.text),
		muted:   lipgloss.NewStyle().Foreground(pal.muted),
		accent:  lipgloss.NewStyle().Foreground(pal.accent),
		success: lipgloss.NewStyle().Foreground(pal.success),
		warning: lipgloss.NewStyle().Foreground(pal.warning),
		danger:  lipgloss.NewStyle().Foreground(pal.danger),
		help:    lipgloss.NewStyle().Foreground(pal.muted),
		cell: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(pal.border),
		cellFocus: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.ThickBorder(), true).
			BorderForeground(pal.accent),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(pal.border),
		cardTitle: lipgloss.NewStyle().Foreground(pal.muted),
		cardValue: lipgloss.NewStyle().Foreground(pal.text).Bold(true),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(pal.accent).
			Padding(1, 2),
	}
}

// scoreStyle colours a consistency score by band.
func (s styles) scoreStyle(score int) lipgloss.Style {
	switch stats.ScoreBand(score) {
	case stats.BandHigh:
		return s.success.Bold(true)
	case stats.BandMid:
		return s.warning.Bold(true)
	default:
		return s.danger.Bold(true)
	}
}

// loadTheme prefers the stored preference over the configured default.
func loadTheme(ctx context.Context, prefs PrefStore, fallback config.Theme) config.Theme {
	if _, ok := palettes[fallback]; !ok {
		fallback = config.ThemeDark
	}
	if prefs == nil {
		return fallback
	}
	raw, ok, err := prefs.Get(ctx, ThemeKey)
	if err != nil {
		log.Printf("WARN: [TUI] failed to read theme preference: %v", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	theme, err := config.ParseTheme(raw)
	if err != nil {
		return fallback
	}
	return theme
}

func saveTheme(ctx context.Context, prefs PrefStore, theme config.Theme) {
	if prefs == nil {
		return
	}
	if err := prefs.Set(ctx, ThemeKey, string(theme)); err != nil {
		log.Printf("ERROR: [TUI] failed to save theme preference: %v", err)
	}
}
