// Package ws exposes the live tracking surface over WebSocket.
//
// Two endpoints live here. The tracking endpoint lets a customer follow
// one order: the connection is subscribed to the order's room on the
// tracking hub and every published position sample is pushed as a JSON
// frame. The feed endpoint lets riders stream position reports upward;
// each report is rate limited per connection and dispatched to the
// publish location use case, which stores it and fans it out.
package ws
