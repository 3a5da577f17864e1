package docker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstrap/devstrap/pkg/client/docker"
)

var errDaemonDown = errors.New("Cannot connect to the Docker daemon")

// fakePinger implements docker.Pinger for predicate tests.
type fakePinger struct {
	err   error
	calls int
}

func (f *fakePinger) Ping(_ context.Context) (types.Ping, error) {
	f.calls++

	return types.Ping{}, f.err
}

func TestGetDockerClient(t *testing.T) {
	t.Parallel()

	dockerClient, err := docker.GetDockerClient()

	require.NoError(t, err)
	assert.NotNil(t, dockerClient)
}

func TestEngineReadyPredicateReportsReady(t *testing.T) {
	t.Parallel()

	pinger := &fakePinger{}
	predicate := docker.EngineReadyPredicate(pinger)

	ready, err := predicate(context.Background())

	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, 1, pinger.calls)
}

func TestEngineReadyPredicateReportsUnready(t *testing.T) {
	t.Parallel()

	pinger := &fakePinger{err: errDaemonDown}
	predicate := docker.EngineReadyPredicate(pinger)

	ready, err := predicate(context.Background())

	require.Error(t, err)
	assert.False(t, ready)
	assert.ErrorIs(t, err, errDaemonDown)
}
