// Package log provides structured protocol logging for the ecoNET driver.
//
// This is separate from operational logging: it is a machine-readable
// trace of frames crossing the wire, driver state transitions, and
// recovered errors, aimed at debugging a live connection rather than
// reading prose in a terminal.
//
// Applications configure logging by passing a Logger implementation to
// pyplumio.WithLogger when opening a connection:
//
//	// Development: log to console via slog.
//	conn, _ := pyplumio.OpenTCP(host, port,
//	    pyplumio.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// Production: append newline-delimited JSON to a file.
//	fl, _ := log.NewFileLogger("/var/log/pyplumio/device.log")
//	conn, _ = pyplumio.OpenTCP(host, port, pyplumio.WithLogger(fl))
//
//	// Both at once.
//	conn, _ = pyplumio.OpenTCP(host, port, pyplumio.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	)))
package log
