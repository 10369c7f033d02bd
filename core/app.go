// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/app.go
// Summary: Application and component contracts driven by the program loop.

package core

// App is the application contract: Update folds a message into the app's
// own state and answers with a command; View draws the whole screen into
// the frame. Both are called from the program loop only, never
// concurrently.
type App interface {
	Update(msg Msg) Command
	View(f *Frame)
}

// Initializer is implemented by apps that want a one-time hook before the
// first draw. The returned command is scheduled exactly like an update
// result, so an app can seed its own message flow or quit immediately.
type Initializer interface {
	Init() Command
}

// Component is a composable sub-tree of an app: same update shape, but the
// view renders into an area instead of the whole frame. A parent forwards
// messages to the child and lifts the returned command into its own
// message type with Command.Map.
type Component interface {
	Update(msg Msg) Command
	View(f *Frame, area Rect)
}
