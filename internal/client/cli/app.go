package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/medico/internal/client/client"
	"github.com/dmitrijs2005/medico/internal/client/config"
	"github.com/dmitrijs2005/medico/internal/client/services"
	"github.com/dmitrijs2005/medico/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	clinic   services.ClinicService
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

// NewApp opens the journal and wires the API client and services for cfg.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.JournalDSN)
	if err != nil {
		log.Error(ctx, "error initializing journal", "dsn", c.JournalDSN, "err", err)
		return nil, err
	}

	session := client.NewSession()
	apiClient, err := client.NewHTTPClient(c.APIURL, &http.Client{Timeout: c.RequestTimeout}, session, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("api client: %w", err)
	}

	return &App{
		config: c,
		auth:   services.NewAuthService(apiClient, session, c.ClinicianRoleID, c.IdentityStrategy, log),
		clinic: services.NewClinicService(apiClient, db, log),
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run blocks in the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	heading("Médico CLI (escriba 'help' para ver los comandos)")
	a.log.Info(ctx, "client started", "api", a.config.APIURL)

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// status is shown in the prompt. It is read from the session every time, so
// a session lost to expiry shows up on the next prompt.
func (a *App) status() string {
	if !a.isLoggedIn() {
		return "anónimo"
	}
	if a.userName != "" {
		return "dr " + a.userName
	}
	if id, ok := a.auth.Identity(); ok {
		return "dr #" + id.SubjectID
	}
	return "dr"
}
