package main

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/games"
)

type memSaver struct {
	mu   sync.Mutex
	runs map[uuid.UUID]int
}

func (m *memSaver) SaveScore(_ string, runID uuid.UUID, score, _ int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.runs == nil {
		m.runs = make(map[uuid.UUID]int)
	}
	m.runs[runID] = score
	return int64(len(m.runs)), nil
}

func simOpts(seed int64) simOptions {
	return simOptions{Ticks: 3000, Every: 4, Seed: seed, TickRate: 60, MaxDT: 0.033, Width: 80, Height: 24}
}

func TestSimulateIsDeterministic(t *testing.T) {
	for _, id := range games.IDs {
		t.Run(id, func(t *testing.T) {
			a, err := simulate(id, simOpts(7))
			require.NoError(t, err)
			b, err := simulate(id, simOpts(7))
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.Positive(t, a.Ticks)
			assert.LessOrEqual(t, a.Ticks, 3000)
			assert.Positive(t, a.Commands)
			assert.GreaterOrEqual(t, a.Best, a.Score)
		})
	}
}

func TestSimulateRestartsAndRecords(t *testing.T) {
	saver := &memSaver{}
	opts := simOpts(3)
	opts.Ticks = 200000
	opts.Restarts = 2
	opts.Saver = saver

	res, err := simulate("snake", opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Runs, 3)
	if res.Phase == "GameOver" {
		assert.Equal(t, 3, res.Runs)
		assert.Len(t, saver.runs, 3, "every finished run is stored once")
	}
}

func TestSimulateErrors(t *testing.T) {
	_, err := simulate("nope", simOpts(1))
	assert.Error(t, err)

	opts := simOpts(1)
	opts.Ticks = 0
	_, err = simulate("pong", opts)
	assert.Error(t, err)
}

func TestPrintSimResult(t *testing.T) {
	res := simResult{Game: "tetris", Seed: 9, Ticks: 10, Runs: 1, Phase: "Running", Score: 40, Best: 40, Level: 1}

	var text bytes.Buffer
	require.NoError(t, printSimResult(&text, res, false))
	assert.Contains(t, text.String(), "tetris (seed 9)")
	assert.Contains(t, text.String(), "level     1")
	assert.NotContains(t, text.String(), "lives")

	var out bytes.Buffer
	require.NoError(t, printSimResult(&out, res, true))
	assert.Contains(t, out.String(), "game: tetris\n")
	assert.Contains(t, out.String(), "score: 40\n")
	assert.NotContains(t, out.String(), "wave:")
}

func TestRepertoireCoversEveryGame(t *testing.T) {
	for _, id := range games.IDs {
		assert.NotEmpty(t, repertoire(id), id)
	}
}
