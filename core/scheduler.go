// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/scheduler.go
// Summary: FIFO message scheduler turning one event into update calls.
// Usage: The program loop calls ProcessMessage per mapped event; apps never
// call the scheduler directly.

package core

// ProcessMessage feeds seed through the app's Update and keeps draining
// follow-up messages until the queue is empty or a Quit surfaces. The
// return value is true when the run loop must stop.
//
// Emitted messages go to the back of the queue and batches are flattened
// in declaration order, so one update's batch of emits is processed after
// everything already queued but before anything those emits produce
// themselves. Quit short-circuits unconditionally: remaining batch
// elements are not visited and messages still queued are discarded.
func ProcessMessage(app App, seed Msg) bool {
	return ProcessCommand(app, Emit(seed))
}

// ProcessCommand runs the same drain loop starting from a command instead
// of a message. The program loop uses it for the Init hook.
func ProcessCommand(app App, cmd Command) bool {
	queue := make([]Msg, 0, 4)
	if schedule(cmd, &queue) {
		return true
	}
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if schedule(app.Update(msg), &queue) {
			return true
		}
	}
	return false
}

// schedule evaluates one command against the pending queue. It reports
// true the moment a Quit is seen, without touching the queue further.
func schedule(cmd Command, queue *[]Msg) bool {
	switch cmd.Kind {
	case CommandQuit:
		return true
	case CommandEmit:
		*queue = append(*queue, cmd.Msg)
		return false
	case CommandBatch:
		for _, child := range cmd.Commands {
			if schedule(child, queue) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
