package command

import (
	"fmt"

	"github.com/pixil98/go-libram/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsConfig enables the /metrics endpoint when Port is set.
type MetricsConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

func (c *MetricsConfig) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("metrics: port %d out of range", c.Port)
	}
	return nil
}

func (c *MetricsConfig) buildServer(reg prometheus.Gatherer) (*metrics.Server, error) {
	if c.Port == 0 {
		return nil, nil
	}
	return metrics.NewServer(c.Host, c.Port, reg)
}
