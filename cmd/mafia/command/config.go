package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string        `json:"tick_interval"`
	Nats         NatsConfig    `json:"nats"`
	Storage      StorageConfig `json:"storage"`
	Games        []GameConfig  `json:"games"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < 100*time.Millisecond {
		el.Add(fmt.Errorf("tick_interval must be at least 100ms"))
	}

	el.Add(c.Nats.validate())
	el.Add(c.Storage.validate())

	for i, g := range c.Games {
		if err := g.validate(); err != nil {
			el.Add(fmt.Errorf("game %d: %w", i, err))
		}
	}

	return el.Err()
}

func (c *Config) tickInterval() time.Duration {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0
	}
	return d
}
