// Package event provides the synchronous publish/subscribe boundary for
// listkit collections.
//
// The notification names form a closed catalog (Topic); subscriptions
// against unknown names fail at registration time. Handlers for a topic run
// synchronously and in registration order before Publish returns, so a
// subscriber can veto a pending mutation from inside its handler. Dispatch
// iterates a snapshot of the handler list, which makes it safe for handlers
// to subscribe, unsubscribe or publish re-entrantly.
package event
