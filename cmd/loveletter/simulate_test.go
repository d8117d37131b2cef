package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/loveletter/internal/engine"
)

func TestSimulatePlaysToTheEnd(t *testing.T) {
	for _, players := range []int{2, 4, 7, 12} {
		var out bytes.Buffer
		result, err := simulate(context.Background(), &simulationOptions{
			Players: players,
			Seed:    42,
			Out:     &out,
		})
		require.NoError(t, err)

		snapshot := result.Snapshot
		assert.Equal(t, engine.StateGameOver, snapshot.State)
		assert.NotEmpty(t, result.Winner)
		assert.Len(t, append(snapshot.Active, snapshot.Eliminated...), players)
		assert.Contains(t, out.String(), "all:")
		assert.NotContains(t, out.String(), "%!")
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() (string, *simulationResult) {
		var out bytes.Buffer
		result, err := simulate(context.Background(), &simulationOptions{
			Players:    3,
			Seed:       7,
			DoubleDeck: true,
			Out:        &out,
		})
		require.NoError(t, err)
		return out.String(), result
	}

	firstOut, first := run()
	secondOut, second := run()

	assert.Equal(t, firstOut, secondOut)
	assert.Equal(t, first.Winner, second.Winner)
	assert.Equal(t, first.Steps, second.Steps)
	assert.True(t, first.Snapshot.DoubleDeck)
}

func TestSimulateRussian(t *testing.T) {
	var out bytes.Buffer
	_, err := simulate(context.Background(), &simulationOptions{
		Players:  2,
		Seed:     1,
		Language: "ru",
		Out:      &out,
	})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "%!")
}

func TestSimulateValidation(t *testing.T) {
	_, err := simulate(context.Background(), &simulationOptions{Players: 1, Out: &bytes.Buffer{}})
	assert.Error(t, err)

	_, err = simulate(context.Background(), &simulationOptions{Players: 13, Out: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestSimulateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulate(ctx, &simulationOptions{Players: 2, Seed: 3, Out: &bytes.Buffer{}})
	assert.ErrorIs(t, err, context.Canceled)
}
