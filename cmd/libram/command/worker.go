package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-libram/internal/metrics"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tick, err := cfg.tickInterval()
	if err != nil {
		return nil, err
	}

	// Fail early on catalogs that are missing anything the resources use
	dict, err := cfg.Assets.BuildDictionary()
	if err != nil {
		return nil, err
	}
	slog.Info("dictionary loaded", "familiars", len(dict.Familiars.GetAll()), "skills", len(dict.Skills.GetAll()))

	clientOpts, err := cfg.Nats.clientOpts()
	if err != nil {
		return nil, err
	}

	reg := metrics.NewRegistry()
	workers := service.WorkerList{}

	server, err := cfg.Nats.buildServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	if server != nil {
		workers["nats"] = server
	}

	metricsServer, err := cfg.Metrics.buildServer(reg)
	if err != nil {
		return nil, fmt.Errorf("creating metrics server: %w", err)
	}
	if metricsServer != nil {
		workers["metrics"] = metricsServer
	}

	workers["status"] = &runner{
		server:     server,
		url:        cfg.Nats.URL,
		clientOpts: clientOpts,
		props:      cfg.Properties,
		tick:       tick,
		reg:        reg,
	}

	return workers, nil
}
