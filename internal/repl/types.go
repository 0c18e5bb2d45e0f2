// Package repl implements the interactive command surface of grafo.
//
// A Session owns at most one graph at a time and evaluates one command
// line per call. Commands mutate the graph (create, load, add_edge, ...)
// or query it (connected, shortest_path, mst, ...); each returns
// rendered text for the terminal. A session is not safe for concurrent
// use.
package repl

import (
	"errors"
	"log/slog"

	"github.com/grafo-dev/grafo/core"
	"github.com/grafo-dev/grafo/internal/config"
	"github.com/grafo-dev/grafo/internal/logging"
)

// ErrExit is returned by Eval when the user asks to leave the session.
var ErrExit = errors.New("repl: exit requested")

// ErrNoGraph is returned when a command needs a graph but none has been
// created or loaded yet.
var ErrNoGraph = errors.New("repl: no graph yet, use 'create' or 'load' first")

// ErrUnknownCommand is returned for an unrecognized command word.
var ErrUnknownCommand = errors.New("repl: unknown command, type 'help'")

// ErrUsage is returned when a command's arguments do not parse.
// The wrapping error carries the expected form.
var ErrUsage = errors.New("repl: usage")

// Session evaluates command lines against the graph it owns.
type Session struct {
	graph *core.Graph
	cfg   config.Config
	log   *slog.Logger
	theme theme
}

// NewSession returns a session with no graph yet. A nil logger
// discards log output.
func NewSession(cfg config.Config, log *slog.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}

	return &Session{
		cfg:   cfg,
		log:   log,
		theme: newTheme(cfg.AccentColor),
	}
}

// Graph exposes the session's current graph; nil before create/load.
func (s *Session) Graph() *core.Graph { return s.graph }
