package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/werlleyg/boilerplate-api/internal/logger"
)

func TestRun_ReturnsConfigError(t *testing.T) {
	err := run([]string{"-no-such-flag"}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")
}

func TestRun_ReturnsErrorForBadAddress(t *testing.T) {
	err := run([]string{"-a", "not-an-address"}, logger.Nop())

	require.Error(t, err)
}
