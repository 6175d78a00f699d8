// Package viz renders corelab's terminal output: the shared lipgloss
// palette and its themes, banners, progress bars and sparklines, and the
// IntVector growth trace with its asciigraph plot.
//
// Styles are package variables so every program picks up the theme chosen
// with ApplyTheme.
package viz
