//go:build mage

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/magefile/mage/sh"
)

// Build builds Kigen for Linux
func Build() error {
	fmt.Println("Building Kigen for Linux...")
	env := map[string]string{
		"GOOS":   "linux",
		"GOARCH": "amd64",
	}
	return sh.RunWith(env, "go", "build", "-o", "kigen-linux-amd64", "./cmd/kigen")
}

// BuildLocal builds Kigen for current platform
func BuildLocal() error {
	fmt.Printf("Building Kigen for %s/%s...\n", runtime.GOOS, runtime.GOARCH)
	return sh.Run("go", "build", "-o", "kigen", "./cmd/kigen")
}

// BuildDocker builds Kigen with the docker build tag
func BuildDocker() error {
	fmt.Println("Building Kigen for Docker...")
	env := map[string]string{
		"GOOS":        "linux",
		"GOARCH":      "amd64",
		"CGO_ENABLED": "0",
	}
	return sh.RunWith(env, "go", "build", "-tags", "docker", "-o", "kigen-docker", "./cmd/kigen")
}

// Test runs tests
func Test() error {
	fmt.Println("Running tests...")
	return sh.Run("go", "test", "-v", "./...")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	os.Remove("kigen")
	os.Remove("kigen-linux-amd64")
	os.Remove("kigen-docker")
	return nil
}
