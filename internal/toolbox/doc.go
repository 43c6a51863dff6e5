// Package toolbox wires the calculators, the validated console reader
// and the journal into the interactive menu hierarchy.
//
// # Menus
//
// The top menu dispatches by validated integer choice to one of six
// tools; each tool runs its own submenu or prompt sequence. Selecting 0
// at any level returns to the parent level, and backing out of the top
// menu ends the session. There are no jumps between sibling tools.
//
// # Basic usage
//
//	settings := config.DefaultSettings()
//	tb := toolbox.New(settings, os.Stdin, os.Stdout)
//	if err := tb.Run(); err != nil {
//	    // console.ErrInputClosed: the input stream ended mid-session
//	}
//
// # Persistence
//
// After each completed calculation the user is offered a y/n save
// prompt; affirmative answers append a one-line summary to the journal.
// A journal that cannot be written is reported and skipped; nothing is
// logged for a calculation that failed.
package toolbox
