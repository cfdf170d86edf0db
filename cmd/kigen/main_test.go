package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPassesEmbeddedAssetsToCLI(t *testing.T) {
	original := executeCLI
	defer func() { executeCLI = original }()

	called := false
	executeCLI = func(version string, gotIndex []byte) error {
		called = true
		assert.Equal(t, strings.TrimSpace(versionFile), version)
		assert.Equal(t, indexTemplate, gotIndex)
		return nil
	}

	require.NoError(t, run())
	assert.True(t, called)
}

func TestRunPropagatesExecuteError(t *testing.T) {
	original := executeCLI
	defer func() { executeCLI = original }()

	executeCLI = func(version string, index []byte) error {
		return errors.New("boom")
	}

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestEmbeddedTemplateHasPlaceholders(t *testing.T) {
	html := string(indexTemplate)
	assert.Contains(t, html, "{{.Title}}")
	assert.Contains(t, html, "{{.Version}}")
	assert.Contains(t, html, "/api/domains")
}

// The feed script must survive a failed fetch (release the loading latch,
// log to the console) and must keep loading pages until the document
// overflows the viewport.
func TestEmbeddedTemplateGuardsFeedScript(t *testing.T) {
	html := string(indexTemplate)
	assert.Contains(t, html, "console.error")
	assert.Contains(t, html, "} finally {")
	assert.Contains(t, html, "fillViewport()")
	assert.Contains(t, html, "document.body.offsetHeight <= window.innerHeight")
}
