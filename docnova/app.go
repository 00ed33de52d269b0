// Package docnova wires the transport, session and search stores into one
// facade: the view issues an intent, the facade runs the remote call and
// drives the store through its lifecycle.
package docnova

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/docnova/go-docnova-client/docnova/api"
	"github.com/docnova/go-docnova-client/docnova/config"
	"github.com/docnova/go-docnova-client/docnova/filter"
	"github.com/docnova/go-docnova-client/docnova/i18n"
	"github.com/docnova/go-docnova-client/docnova/model"
	"github.com/docnova/go-docnova-client/docnova/search"
	"github.com/docnova/go-docnova-client/docnova/session"
)

var logger = logrus.WithField("component", "docnova")

type App struct {
	cfg      *config.Config
	loc      *i18n.Localizer
	invoices api.InvoiceService

	Session *session.Store
	Results *search.Store
}

func NewApp(cfg *config.Config) *App {
	client := api.New(cfg.Environment)
	return newApp(cfg, client)
}

// NewAppWithClient exists for wiring test doubles under the facade.
func NewAppWithClient(cfg *config.Config, client api.Client) *App {
	return newApp(cfg, client)
}

func newApp(cfg *config.Config, client api.Client) *App {
	loc := i18n.New(cfg.Locale)
	sess := session.New(api.NewAuthService(client), session.OpenFile(cfg.SessionFile), loc)

	// forced logout on any unauthorized response, transport only signals
	client.OnSessionExpired(sess.Expire)

	app := &App{
		cfg:      cfg,
		loc:      loc,
		invoices: api.NewInvoiceService(client),
		Session:  sess,
		Results:  search.NewStore(),
	}
	app.Session.Restore()
	return app
}

func (a *App) Localizer() *i18n.Localizer { return a.loc }

// DefaultQuery is the initial search of the list view.
func (a *App) DefaultQuery() model.SearchQuery {
	return filter.DefaultQuery(a.cfg.CompanyID, time.Now())
}

// Search runs one search through the result store. The store is fenced, so a
// late resolution of an older call cannot overwrite this one.
func (a *App) Search(ctx context.Context, query model.SearchQuery) search.State {
	seq := a.Results.Begin()

	token := a.Session.Current().Token
	page, err := a.invoices.Search(ctx, query, token)
	if err != nil {
		logger.Debugf("search failed: %v", err)
		a.Results.Fail(seq, a.loc.MessageFor(err))
		return a.Results.State()
	}

	a.Results.Resolve(seq, page)
	return a.Results.State()
}
