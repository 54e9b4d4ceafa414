package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-libram/internal/host"
	natsserver "github.com/pixil98/go-libram/internal/nats"
)

type NatsConfig struct {
	// URL of an existing server. Ignored when Embedded is set.
	URL            string          `json:"url,omitempty"`
	Embedded       *EmbeddedConfig `json:"embedded,omitempty"`
	Prefix         string          `json:"prefix,omitempty"`
	RequestTimeout string          `json:"request_timeout,omitempty"`
}

type EmbeddedConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (n *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if n.URL == "" && n.Embedded == nil {
		el.Add(fmt.Errorf("nats: one of url or embedded is required"))
	}
	if n.RequestTimeout != "" {
		if _, err := time.ParseDuration(n.RequestTimeout); err != nil {
			el.Add(fmt.Errorf("nats: parsing request_timeout: %w", err))
		}
	}
	if n.Embedded != nil && n.Embedded.StartTimeout != "" {
		if _, err := time.ParseDuration(n.Embedded.StartTimeout); err != nil {
			el.Add(fmt.Errorf("nats: parsing embedded.start_timeout: %w", err))
		}
	}

	return el.Err()
}

func (n *NatsConfig) buildServer() (*natsserver.Server, error) {
	if n.Embedded == nil {
		return nil, nil
	}

	var opts []natsserver.ServerOpt
	if n.Embedded.StartTimeout != "" {
		d, err := time.ParseDuration(n.Embedded.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, natsserver.WithStartTimeout(d))
	}
	if n.Embedded.Host != "" {
		opts = append(opts, natsserver.WithHost(n.Embedded.Host))
	}
	if n.Embedded.Port != 0 {
		opts = append(opts, natsserver.WithPort(n.Embedded.Port))
	}

	return natsserver.NewServer(opts...)
}

func (n *NatsConfig) clientOpts() ([]host.NatsClientOpt, error) {
	var opts []host.NatsClientOpt
	if n.Prefix != "" {
		opts = append(opts, host.WithSubjectPrefix(n.Prefix))
	}
	if n.RequestTimeout != "" {
		d, err := time.ParseDuration(n.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing request_timeout: %w", err)
		}
		opts = append(opts, host.WithRequestTimeout(d))
	}
	return opts, nil
}
