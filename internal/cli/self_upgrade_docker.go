//go:build docker

package cli

// Container images are replaced, not patched in place.
func setupSelfUpgrade() {}
