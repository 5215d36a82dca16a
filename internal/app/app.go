package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/jgivc/extprobe/internal/adapter/httpadapter"
	"github.com/jgivc/extprobe/internal/common"
	"github.com/jgivc/extprobe/internal/config"
	"github.com/jgivc/extprobe/internal/entity"
	"github.com/jgivc/extprobe/internal/service/filter"
	"github.com/jgivc/extprobe/internal/service/probe"
	"github.com/jgivc/extprobe/internal/storage/catalog"
	"github.com/jgivc/extprobe/internal/util"
	"github.com/spf13/afero"
)

const (
	StateIdle State = iota
	StateFetching
	StateLoaded
	StateFiltering
	StateProbing
	StateDone
	StateFailed
)

type State int

func (s State) String() string {
	return [...]string{"Idle", "Fetching", "Loaded", "Filtering", "Probing", "Done", "Failed"}[s]
}

type Fetcher interface {
	Fetch(ctx context.Context, url, path string) error
}

type CatalogStorage interface {
	Load(path string) ([]entity.Extension, error)
}

type ProbeService interface {
	ProbeAll(ctx context.Context, exts []entity.Extension) ([]probe.Report, error)
}

type Option func(a *App)

func WithFS(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

func WithHTTPClient(cl *http.Client) Option {
	return func(a *App) {
		a.cl = cl
	}
}

func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

type App struct {
	cfg   *config.Config
	fs    afero.Fs
	cl    *http.Client
	out   io.Writer
	log   *slog.Logger
	state State

	fetcher Fetcher
	store   CatalogStorage
	prober  ProbeService
}

func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		cfg: cfg,
		fs:  afero.NewOsFs(),
		cl:  http.DefaultClient,
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		level, _ := cfg.SlogLevel()
		a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	a.log = a.log.With(slog.String("run_id", util.NewRunID()))

	a.fetcher = httpadapter.NewFetcherWithFS(a.cl, a.fs, a.log)
	a.store = catalog.NewStorageWithFS(a.fs, a.log)
	a.prober = probe.NewProbeService(a.cl, a.out, a.log)

	return a
}

func (a *App) State() State {
	return a.state
}

// Run executes the whole pipeline once. The first error aborts the run.
func (a *App) Run(ctx context.Context) error {
	a.setState(StateFetching)
	if err := a.fetcher.Fetch(ctx, a.cfg.CatalogURL, a.cfg.OutputPath); err != nil {
		return a.fail(fmt.Errorf("cannot fetch catalog: %w", err))
	}

	if _, err := fmt.Fprintf(a.out, "File downloaded successfully to: %s\n", a.cfg.OutputPath); err != nil {
		return a.fail(common.NewError(common.KindIO, "write download confirmation", err))
	}

	exts, err := a.store.Load(a.cfg.OutputPath)
	if err != nil {
		return a.fail(fmt.Errorf("cannot load catalog: %w", err))
	}
	a.setState(StateLoaded)

	a.setState(StateFiltering)
	selected := filter.ByLang(exts, a.cfg.Lang)
	a.log.Info("Catalog filtered", slog.String("lang", a.cfg.Lang), slog.Int("total", len(exts)), slog.Int("selected", len(selected)))

	a.setState(StateProbing)
	if _, err := a.prober.ProbeAll(ctx, selected); err != nil {
		return a.fail(fmt.Errorf("cannot probe sources: %w", err))
	}

	a.setState(StateDone)

	return nil
}

func (a *App) setState(s State) {
	a.log.Debug("State changed", slog.String("from", a.state.String()), slog.String("to", s.String()))
	a.state = s
}

func (a *App) fail(err error) error {
	log := a.log.With(slog.String("state", a.state.String()))
	if kind, ok := common.KindOf(err); ok {
		log = log.With(slog.String("kind", kind.String()))
	}

	log.Error("Run failed", slog.Any("error", err))
	a.setState(StateFailed)

	return err
}
