//go:build docker

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFiberConfigNoProxyHeaderInDocker(t *testing.T) {
	config := createFiberConfig("Test App")

	assert.Empty(t, config.ProxyHeader)
}
