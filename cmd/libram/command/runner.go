package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-libram/internal/driver"
	"github.com/pixil98/go-libram/internal/host"
	natsserver "github.com/pixil98/go-libram/internal/nats"
	"github.com/pixil98/go-libram/internal/status"
	"github.com/prometheus/client_golang/prometheus"
)

// runner connects to the host bridge and drives the status reporter. It
// connects inside Start so that an embedded server can come up first.
type runner struct {
	server     *natsserver.Server
	url        string
	clientOpts []host.NatsClientOpt
	props      PropertyConfig
	tick       time.Duration
	reg        prometheus.Registerer
}

func (r *runner) Start(ctx context.Context) error {
	url := r.url
	if r.server != nil {
		if err := r.server.WaitReady(); err != nil {
			return err
		}
		url = r.server.ClientURL()
	}

	conn, err := nats.Connect(url,
		nats.Name("libram"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer conn.Close()

	client := host.NewNatsClient(conn, r.clientOpts...)

	store, closeStore, err := r.props.BuildStore(ctx, client)
	if err != nil {
		return fmt.Errorf("building property store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Warn("closing property store", "error", err)
		}
	}()

	reporter := status.NewReporter(host.NewMetered(client, r.reg), store, r.reg)
	d := driver.NewDriver([]driver.Manager{reporter},
		driver.WithTickLength(r.tick),
		driver.WithImmediateTick(),
	)

	slog.InfoContext(ctx, "reporting status", "nats", url, "tick", r.tick)
	return d.Start(ctx)
}
