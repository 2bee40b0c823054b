// Package ui contains the Bubble Tea program that hosts the entry list.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, mouse, resize, kicker events).
//   - Handlers never touch state directly. They schedule state actions on a
//     command.Bus; once the handler returns, Update drains the bus through the
//     dispatcher one action at a time, in the order they were scheduled.
//   - A fatal error from the dispatcher is kept on the model and ends the
//     program with tea.Quit. Err exposes it to the caller of tea.Program.Run.
//
// Rendering:
//   - View renders every visible entry through renderEntries, which reuses the
//     previous fragment of an entry whenever its inputs (the entry itself, its
//     focus status, the search string and the width) are unchanged.
//   - Entry fragments carry click handlers bound to the schedule callback, so
//     a mouse click on a header focuses that entry and a click on a row also
//     sets the inner focus point.
package ui
