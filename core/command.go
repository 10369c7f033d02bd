// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/command.go
// Summary: The effect descriptions an update returns to the scheduler.

package core

// Msg is an application-defined message. Apps declare their own message
// types and switch on them in Update.
type Msg interface{}

// CommandKind discriminates the command sum.
type CommandKind uint8

const (
	// CommandNone is the no-effect command; the zero Command value.
	CommandNone CommandKind = iota
	// CommandQuit stops the run loop.
	CommandQuit
	// CommandEmit feeds another message through Update before the next redraw.
	CommandEmit
	// CommandBatch composes commands in declaration order.
	CommandBatch
)

// Command describes what should happen after an update: nothing, stop the
// program, emit a follow-up message, or a batch of those. Commands are
// built by Update, consumed immediately by the scheduler, and never stored.
type Command struct {
	Kind     CommandKind
	Msg      Msg       // payload when Kind is CommandEmit
	Commands []Command // children when Kind is CommandBatch
}

// None returns the no-effect command. The zero value is equivalent.
func None() Command { return Command{} }

// Quit returns the command that stops the run loop.
func Quit() Command { return Command{Kind: CommandQuit} }

// Emit returns a command that re-enters Update with msg.
func Emit(msg Msg) Command { return Command{Kind: CommandEmit, Msg: msg} }

// Batch composes commands; they are evaluated in the given order.
func Batch(cmds ...Command) Command {
	return Command{Kind: CommandBatch, Commands: cmds}
}

// Map rewrites every Emit payload through f, leaving None and Quit
// untouched and preserving batch order and nesting. It lifts a child
// component's command into the parent's message type.
func (c Command) Map(f func(Msg) Msg) Command {
	switch c.Kind {
	case CommandEmit:
		return Command{Kind: CommandEmit, Msg: f(c.Msg)}
	case CommandBatch:
		if len(c.Commands) == 0 {
			return c
		}
		mapped := make([]Command, len(c.Commands))
		for i, child := range c.Commands {
			mapped[i] = child.Map(f)
		}
		return Command{Kind: CommandBatch, Commands: mapped}
	default:
		return c
	}
}
