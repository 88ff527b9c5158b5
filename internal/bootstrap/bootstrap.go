package bootstrap

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "mpt/internal/modules/catalog/adapter/in"
	catalogoutadapter "mpt/internal/modules/catalog/adapter/out"
	catalogservice "mpt/internal/modules/catalog/service"
	catalogusecase "mpt/internal/modules/catalog/usecase"
	deployinadapter "mpt/internal/modules/deploy/adapter/in"
	deployoutadapter "mpt/internal/modules/deploy/adapter/out"
	deployservice "mpt/internal/modules/deploy/service"
	deployusecase "mpt/internal/modules/deploy/usecase"
	rosterinadapter "mpt/internal/modules/roster/adapter/in"
	rosteroutadapter "mpt/internal/modules/roster/adapter/out"
	rosterservice "mpt/internal/modules/roster/service"
	rosterusecase "mpt/internal/modules/roster/usecase"
	submissioninadapter "mpt/internal/modules/submission/adapter/in"
	submissionoutadapter "mpt/internal/modules/submission/adapter/out"
	submissionservice "mpt/internal/modules/submission/service"
	submissionusecase "mpt/internal/modules/submission/usecase"
	viewerinadapter "mpt/internal/modules/viewer/adapter/in"
	vieweroutadapter "mpt/internal/modules/viewer/adapter/out"
	viewerservice "mpt/internal/modules/viewer/service"
	viewerusecase "mpt/internal/modules/viewer/usecase"
	"mpt/internal/platform/clock"
	"mpt/internal/platform/config"
	"mpt/internal/platform/id"
	uiapp "mpt/internal/ui/app"
)

type App struct {
	CatalogCLI    cataloginadapter.CLIHandler
	DeployCLI     deployinadapter.CLIHandler
	SubmissionCLI submissioninadapter.CLIHandler
	RosterCLI     rosterinadapter.CLIHandler
	ViewerCLI     viewerinadapter.CLIHandler

	closers []func() error
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	catalogProjector, err := catalogoutadapter.NewSQLiteCatalogProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new catalog projector: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewFileCatalogStore(cfg.CatalogPath),
		catalogProjector,
	))

	deployUC := deployusecase.NewInteractor(deployservice.NewDeployService(
		deployoutadapter.NewSSHRemoteShell(),
		deployoutadapter.NewRsyncFileSyncer(cfg.CoursePath),
		deployoutadapter.NewSystemSleeper(),
		ids,
		logger,
	), cfg.Deploy)

	codeStore, err := submissionoutadapter.NewBadgerCodeStore(cfg.CodesPath)
	if err != nil {
		return nil, fmt.Errorf("new code store: %w", err)
	}
	submissionUC := submissionusecase.NewInteractor(submissionservice.NewSubmissionService(
		clk,
		submissionoutadapter.NewFSAnswerStore(cfg.DataPath),
		submissionoutadapter.NewFileHashIndex(cfg.DataPath),
		submissionoutadapter.NewFileSubmissionLog(cfg.DataPath),
		codeStore,
	))

	rosterUC := rosterusecase.NewInteractor(rosterservice.NewRosterService(
		rosteroutadapter.NewCSVUserStore(cfg.RosterPath),
	))

	viewerUC := viewerusecase.NewInteractor(viewerservice.NewViewerService(
		vieweroutadapter.NewYAMLManifestStore(cfg.ViewersPath),
		vieweroutadapter.NewGRPCHost(),
		vieweroutadapter.NewFSContentStore(cfg.CoursePath),
	))

	return &App{
		CatalogCLI:    cataloginadapter.NewCLIHandler(catalogUC),
		DeployCLI:     deployinadapter.NewCLIHandler(deployUC),
		SubmissionCLI: submissioninadapter.NewCLIHandler(submissionUC),
		RosterCLI:     rosterinadapter.NewCLIHandler(rosterUC),
		ViewerCLI:     viewerinadapter.NewCLIHandler(viewerUC),
		closers:       []func() error{codeStore.Close},
	}, nil
}

// Close releases stores that hold filesystem locks. Call it once the app is
// done; commands defer it right after loadApp.
func (a *App) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.RosterCLI, app.SubmissionCLI, app.DeployCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
