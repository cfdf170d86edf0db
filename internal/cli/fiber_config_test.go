package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFiberConfig(t *testing.T) {
	tests := []struct {
		name    string
		appName string
	}{
		{name: "simple name", appName: "Kigen"},
		{name: "name with version", appName: "Kigen v1.0.0"},
		{name: "empty name", appName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createFiberConfig(tt.appName)
			assert.Equal(t, tt.appName, config.AppName)
		})
	}
}
