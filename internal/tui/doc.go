// Package tui runs the flashcard application in a terminal.
//
// The bubbletea program plays the part a browser plays for a web
// page: it owns the mount point, paints the live element tree kept by
// the shell, and turns key presses into events on live elements. All
// application state stays in the shell; the TUI holds only what a
// browser would, namely focus, the text being edited, scroll position
// and the status bar.
//
// Data flow:
//
//	key press -> focused element -> shell.Fire -> handler -> dispatch
//	    -> Transition -> Render -> Diff -> Apply -> repaint
package tui
