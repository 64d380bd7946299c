// Command wellnessctl runs the wellness analyses over recorded sensor files
// and seeds the database with demo data.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
