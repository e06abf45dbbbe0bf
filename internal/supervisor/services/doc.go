// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package services provides suture.Service wrappers for the view server.

# HTTPServerService

Adapts http.Server's blocking ListenAndServe to suture's context-driven Serve,
with graceful shutdown on cancellation:

	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

# UpstreamMonitor

Probes the recommendation service (GET <base>/) on an interval. The latest
outcome backs the /healthz endpoint and the moodflix_upstream_up gauge. An
unreachable service is reported, never treated as a service failure:

	monitor := services.NewUpstreamMonitor(client, services.UpstreamMonitorConfig{
	    Interval: time.Minute,
	}, logging.Logger())
	tree.AddMonitorService(monitor)

	status, ok := monitor.Status()
*/
package services
