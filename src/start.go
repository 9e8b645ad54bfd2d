package gauntlet

import (
	"context"
	"time"

	"cirello.io/oversight"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/application/component"
	"github.com/input-output-hk/gauntlet/src/application/component/web"
	"github.com/input-output-hk/gauntlet/src/application/service"
	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
)

//go:generate mockery --all --keeptree

type StartCmd struct {
	RunnerOpts

	WebListen string `arg:"--web-listen,env:GAUNTLET_WEB_LISTEN" default:":8080"`
	WebToken  string `arg:"--web-token" help:"file that contains the bearer token required to post events"`
	QueueSize int    `arg:"--queue-size" default:"16" help:"runs accepted by the API that may wait for execution"`

	LogDb bool `arg:"--log-db"`
}

type Instance struct {
	Web    *web.Web
	Runner *component.RunConsumer

	logger *zerolog.Logger
	db     *pgxpool.Pool
}

func (cmd StartCmd) NewInstance(ctx context.Context, logger *zerolog.Logger) (*Instance, error) {
	instance := &Instance{logger: logger}

	workflow, err := cmd.LoadWorkflow(logger)
	if err != nil {
		return nil, err
	}

	if db, err := config.DBConnection(ctx, logger, cmd.LogDb); err != nil {
		return nil, err
	} else {
		instance.db = db
	}

	if err := config.Migrate(ctx, instance.db); err != nil {
		instance.Close()
		return nil, err
	}

	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		instance.Close()
		return nil, errors.WithMessage(err, "Could not register metrics")
	}

	broadcaster := service.NewBroadcaster(logger)
	runService := service.NewRunService(instance.db, logger)
	recorder := service.Recorders{runService, metrics, broadcaster, service.NewLogRecorder(logger)}
	matrixService := cmd.NewMatrixService(metrics, recorder, logger)

	queue := make(chan *domain.Run, cmd.QueueSize)

	instance.Runner = &component.RunConsumer{
		Logger:        logger.With().Str("component", "RunConsumer").Logger(),
		Workflow:      workflow,
		MatrixService: matrixService,
		Queue:         queue,
	}

	cfg, err := config.NewWebConfig(cmd.WebListen, cmd.WebToken)
	if err != nil {
		instance.Close()
		return nil, err
	}
	instance.Web = &web.Web{
		Config:        cfg,
		Logger:        logger.With().Str("component", "Web").Logger(),
		Workflow:      workflow,
		MatrixService: matrixService,
		RunService:    runService,
		Broadcaster:   broadcaster,
		Gatherer:      prometheus.DefaultGatherer,
		Queue:         queue,
	}

	return instance, nil
}

func (self *Instance) Close() {
	if self.db != nil {
		self.db.Close()
	}
}

func (self *Instance) Run(ctx context.Context) error {
	self.logger.Info().Msg("Starting components")

	supervisor := oversight.New(
		oversight.WithLogger(&config.SupervisorLogger{Logger: self.logger}),
		oversight.WithSpecification(
			10,                    // number of restarts
			1*time.Minute,         // within this time period
			oversight.OneForOne(), // restart every task on its own
		),
	)

	if err := supervisor.Add(self.Runner.Start); err != nil {
		return err
	}

	if err := supervisor.Add(self.Web.Start); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := supervisor.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.WithMessage(err, "While starting supervisor")
	}

	<-ctx.Done()
	return nil
}

func (cmd StartCmd) Run(ctx context.Context, logger *zerolog.Logger) error {
	instance, err := cmd.NewInstance(ctx, logger)
	if err != nil {
		return err
	}
	defer instance.Close()

	return instance.Run(ctx)
}
