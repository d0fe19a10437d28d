// Package cli is the terminal client for healthtrack: a REPL over the
// auth flows and the per-collection synchronizers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/healthtrack/internal/client/config"
	"github.com/dmitrijs2005/healthtrack/internal/client/gateway"
	"github.com/dmitrijs2005/healthtrack/internal/client/services"
	"github.com/dmitrijs2005/healthtrack/internal/client/session"
	"github.com/dmitrijs2005/healthtrack/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	auth   *services.AuthService
	vitals *services.VitalsService
	docs   *services.DocumentsService
	chat   *services.ChatService

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	// one printed line per failed operation
	notifier := services.NotifierFunc(func(ctx context.Context, msg string) {
		fmt.Fprintln(a.out, "! "+msg)
	})

	sessions := session.NewStore()
	gw := gateway.New(cfg, sessions, log, nil)

	a.auth = services.NewAuthService(gw, sessions)
	a.vitals = services.NewVitalsService(gw, notifier)
	a.docs = services.NewDocumentsService(gw, notifier)
	a.chat = services.NewChatService(gw, notifier)

	return a
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentSession() != nil
}

func (a *App) getStatus() string {
	if sess := a.auth.CurrentSession(); sess != nil {
		return fmt.Sprintf("(%s)", sess.User.Email)
	}
	return ""
}
