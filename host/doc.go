// Package host models the page a provider bootstraps into.
//
// A Document knows its location, holds an HTML <head> that providers inject
// remote <script> elements into, and keeps the named global command queues
// (_gaq, _kmq, ...) and settings globals that provider snippets seed before
// their remote script loads. The dispatcher never inspects any of this; it is
// the side-effect surface of provider bootstraps and of capability calls that
// push commands for the remote script to replay.
package host
