package main

import (
	"fmt"

	"github.com/younwookim/burger/internal/application/replay"
	"github.com/younwookim/burger/internal/application/scene/playing"
	"github.com/younwookim/burger/internal/infrastructure/config"
)

// useReplayConfig switches cfg to the actor and framerate a replay was
// recorded with, so playback matches the recorded run.
func useReplayConfig(cfg *config.GameConfig, data replay.ReplayData) error {
	if data.Config != "" {
		a, err := config.ParseActor([]byte(data.Config))
		if err != nil {
			return err
		}
		cfg.Actor = a
	}
	if data.Framerate > 0 {
		cfg.World.Display.Framerate = data.Framerate
	}
	return nil
}

// runHeadless simulates every recorded frame without a window and returns
// the final actor summary.
func runHeadless(cfg *config.GameConfig, data replay.ReplayData) (string, error) {
	src := playing.NewReplaySource(data)
	p, err := playing.New(cfg, playing.Options{Source: src})
	if err != nil {
		return "", fmt.Errorf("failed to create scene: %w", err)
	}
	defer p.OnExit()

	for !src.Done() {
		p.Step()
	}
	return p.Summary(), nil
}
