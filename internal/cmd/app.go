package cmd

import (
	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/cart"
	"github.com/soutech/shopctl/internal/catalog"
	"github.com/soutech/shopctl/internal/config"
	"github.com/soutech/shopctl/internal/log"
	"github.com/soutech/shopctl/internal/render"
	"github.com/soutech/shopctl/internal/session"
	"github.com/soutech/shopctl/internal/storage"
)

// app bundles the collaborators every command needs. It is built once per
// invocation from the config file, environment and flags.
type app struct {
	cfg     *config.Config
	client  *api.Client
	session *session.Store
	guard   *session.Guard
	cart    *cart.Store
	loader  *catalog.Loader
	money   *render.Money
	logger  *log.Logger
}

// newApp loads configuration and wires the client, session, and cart.
// The stored bearer token, if any, is attached to the client so every
// command starts authenticated when a session exists.
func newApp() (*app, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}

	if !flagVerbose {
		logCfg := log.DefaultConfig()
		logCfg.Level = log.ParseLevel(cfg.LogLevel)
		logCfg.Format = log.ParseFormat(cfg.LogFormat)
		log.SetDefaultLogger(log.New(logCfg))
	}

	stateDir := cfg.StateDir
	if stateDir == "" {
		stateDir = storage.DefaultDir()
	}
	store, err := storage.NewFileStore(stateDir)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.APIURL)
	sessionStore := session.NewStore(store)
	if token := sessionStore.Token(); token != "" {
		client.SetToken(token)
	}

	tag := cfg.LanguageTag()

	return &app{
		cfg:     cfg,
		client:  client,
		session: sessionStore,
		guard:   session.NewGuard(sessionStore, client),
		cart:    cart.NewStore(store),
		loader:  catalog.NewLoader(client, tag),
		money:   render.NewMoney(tag, cfg.Currency),
		logger:  log.DefaultLogger(),
	}, nil
}

// formatter builds the output formatter selected by --output
func formatter() (render.Formatter, error) {
	return render.NewFormatter(flagOutput, nil)
}
