// Package tui provides the full-screen terminal interface for guess.
//
// The TUI wraps a game.Session: each submitted line goes through the same
// Submit path as line mode, so the state machine and history recording are
// identical. The model shows a header with the range, an optional secret
// line, the scrollback of evaluated guesses, and an input field.
//
// Usage:
//
//	session := game.NewSession(game.WithObserver(recorder))
//	state, err := tui.Run(session, tui.Options{RevealSecret: true})
//
// Ctrl+C aborts the session. After a win any key exits.
package tui
