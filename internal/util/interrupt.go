package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler runs shutdown once on SIGINT/SIGTERM before
// exiting. Used to close the browser session so Chromium does not
// linger after Ctrl-C.
func SetupInterruptHandler(shutdown func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Println("\nInterrupt received. Cleaning up...")

		if shutdown != nil {
			shutdown()
		}
		fmt.Println("\nExiting due to interrupt.")

		os.Exit(1)
	}()
}
