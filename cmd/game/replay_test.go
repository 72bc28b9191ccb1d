package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/burger/internal/application/replay"
	"github.com/younwookim/burger/internal/infrastructure/config"
)

func loadEmbedded(t *testing.T) *config.GameConfig {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	return cfg
}

func TestEmbeddedConfigs(t *testing.T) {
	cfg := loadEmbedded(t)

	assert.Equal(t, "burger", cfg.Actor.Projectile.Name)
	assert.Equal(t, 60, cfg.World.Display.Framerate)

	loader, err := newLoader("")
	require.NoError(t, err)
	src, err := loader.ReadActor()
	require.NoError(t, err)
	assert.Contains(t, string(src), "throw_duration")
}

func TestRunHeadless_Idle(t *testing.T) {
	summary, err := runHeadless(loadEmbedded(t), replay.CreateTestReplayData(30))
	require.NoError(t, err)

	assert.Contains(t, summary, "frame=30")
	assert.Contains(t, summary, "anim=Idle aerial=Grounded throw=Ready")
	assert.Contains(t, summary, "material=run_right_0")
}

func TestRunHeadless_WalkLeftAndThrow(t *testing.T) {
	data := replay.CreateTestReplayData(20)
	for i := range data.Frames {
		data.Frames[i].H = -1
	}
	data.Frames[19].T = true

	summary, err := runHeadless(loadEmbedded(t), data)
	require.NoError(t, err)

	assert.Contains(t, summary, "facingRight=false")
	assert.Contains(t, summary, "throw=Throwing")
	assert.Contains(t, summary, "material=throw_left")
	assert.Contains(t, summary, "projectiles=1")
}

func TestUseReplayConfig(t *testing.T) {
	cfg := loadEmbedded(t)
	data := replay.CreateTestReplayData(1)
	data.Framerate = 30
	data.Config = `
tunables: {move_speed: 6, throw_duration: 1s, animation_frame_interval: 50ms}
visuals: {right: [a, b], left: [c, d], throw_right: e, throw_left: f}
body: {width: 1, height: 1, mass: 1}
projectile: {name: fries, radius: 0.1, mass: 0.1}
`

	require.NoError(t, useReplayConfig(cfg, data))
	assert.Equal(t, 6.0, cfg.Actor.Tunables.MoveSpeed)
	assert.Equal(t, "fries", cfg.Actor.Projectile.Name)
	assert.Equal(t, 30, cfg.World.Display.Framerate)

	data.Config = "tunables: {move_speed: -1}"
	assert.Error(t, useReplayConfig(cfg, data))
}

func TestUseReplayConfig_KeepsCurrentWhenEmpty(t *testing.T) {
	cfg := loadEmbedded(t)
	data := replay.ReplayData{}

	require.NoError(t, useReplayConfig(cfg, data))
	assert.Equal(t, "burger", cfg.Actor.Projectile.Name)
	assert.Equal(t, 60, cfg.World.Display.Framerate)
}
