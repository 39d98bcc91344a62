//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

const demoJob = "jobs/demo.toml"

// Samples the demo job and prints the report.
func (Run) Sample() error {
	fmt.Println("Sampling demo job...")
	_, err := executeCmd("go", withArgs("run", ".", "sample", "-config", demoJob), withStream())
	return err
}

// Renders the demo job to PNGs.
func (Run) Plot() error {
	mg.Deps(Build.Binary)
	fmt.Println("Plotting demo job...")
	_, err := executeCmd("bin/lina", withArgs("plot", "-config", demoJob), withStream())
	return err
}
