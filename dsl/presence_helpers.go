package dsl

import "github.com/reoring/skema"

// isAbsent treats both absent and null as "nothing to test", the convention
// every built-in kind test follows.
func isAbsent[T any](v skema.Value[T]) bool { return !v.IsPresent() }

func firstMessage(msg []skema.Message) skema.Message {
	for _, m := range msg {
		if m != nil {
			return m
		}
	}
	return nil
}
