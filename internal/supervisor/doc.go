// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package supervisor runs the view server's long-lived services under suture v4.

# Overview

	RootSupervisor ("moodflix")
	├── MonitorSupervisor ("monitor-layer")
	│   └── UpstreamMonitor (recommendation service health probe)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff. Each layer counts failures on its
own, so an unreachable recommendation service never restarts the HTTP server.

Supervisor events (starts, failures, backoff) are logged through log/slog via
the sutureslog adapter; cmd/server hands it a zerolog-backed slog logger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddMonitorService(monitor)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

See Also:
  - internal/supervisor/services: service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
