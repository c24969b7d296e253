// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package live pushes dashboard snapshots to websocket clients.

# Hub

	hub := live.NewHub[models.Dashboard]()
	updates, unsubscribe := hub.Subscribe(live.TopicDashboard)
	defer unsubscribe()

	hub.Publish(live.TopicDashboard, dashboard)

A subscriber holds at most one pending value. Publishing while one is
pending replaces it, so slow readers only ever see the newest snapshot and
publishers never block.

# Websocket

	err := live.Serve(w, r, hub, live.TopicDashboard, loadDashboard)

Serve subscribes, sends the initial snapshot, then forwards every
published value as a JSON text frame. It pings idle clients and returns
when the client disconnects.
*/
package live
