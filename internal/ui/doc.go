// Package ui contains the Bubble Tea program that renders the sidebar menu
// and turns keyboard drag gestures into reorder engine calls.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, selection results).
//   - Key presses are offered to the filter editor first (internal/ui/input.go);
//     whatever it declines is treated as navigation or a drag gesture
//     (internal/ui/navigation.go, internal/ui/drag.go).
//
// State ownership:
//   - The menu arrangement is a menutree.Tree value owned by Model. A drop
//     replaces it with the tree returned by the reorder engine; nothing else
//     writes to it.
//   - Rows, cursor, filter, expanded groups and the drag payload live in
//     internal/ui/state.Sidebar.
//   - Selecting a leaf runs the configured handler through the
//     internal/ui/command bus and reports back with a SelectedMsg.
package ui
