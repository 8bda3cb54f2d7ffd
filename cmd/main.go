package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCmd(runApp).Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
