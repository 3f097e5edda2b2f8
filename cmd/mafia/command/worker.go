package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-mafia/internal/driver"
	"github.com/pixil98/go-mafia/internal/messaging"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}
	ctx := context.Background()

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	presets, err := cfg.Storage.Presets.buildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating preset store: %w", err)
	}
	snapshots, err := cfg.Storage.Snapshots.buildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating snapshot store: %w", err)
	}

	matches := driver.NewMatchManager(ctx,
		driver.WithRecords(snapshots),
		driver.WithChatSink(messaging.NewChatPublisher(natsServer)),
	)
	if err := matches.Resume(ctx); err != nil {
		return nil, fmt.Errorf("resuming games: %w", err)
	}

	for i, g := range cfg.Games {
		if err := g.Preset.Resolve(presets); err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
		if _, err := matches.Queue(ctx, g.Players, *g.Preset.Get()); err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
	}

	d := driver.NewDriver([]driver.Ticker{matches}, driver.WithTickLength(cfg.tickInterval()))

	return service.WorkerList{
		"nats":   natsServer,
		"driver": d,
	}, nil
}
