// Package collection provides an in-memory ordered container whose
// mutations are interceptable.
//
// Every insertion and removal runs through a small per-mutation pipeline:
// a before-notification fires synchronously, any subscriber may cancel the
// pending change through the continuation it receives, and a canceled
// change can be resumed later (even from inside the cancel handler) to
// replay its commit. Committed changes fire the commit and after
// notifications in order; a removal that empties the collection fires
// "empty" as well.
//
//	coll := collection.New[string]()
//	coll.On(event.TopicAddBefore, func(ev collection.Event[string]) {
//	    if ev.Item == "spam" {
//	        ev.Continuation.Cancel()
//	    }
//	})
//	coll.Add("ham", "spam") // "spam" never enters the sequence
//
// Collections also expose named read-only views (recomputed on every read)
// and named features forwarding to the generic sequence utilities in the
// util package.
//
// Collections are not safe for concurrent use; all mutation and dispatch
// is expected to happen on one goroutine. Re-entrant use from inside
// handlers is supported.
package collection
