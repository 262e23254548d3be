package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupGracefulShutdown отменяет контекст при SIGINT/SIGTERM.
//
// Возвращает функцию освобождения ресурсов для defer:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer SetupGracefulShutdown(cancel)()
func SetupGracefulShutdown(cancel context.CancelFunc) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			Info("Received signal, shutting down gracefully", "signal", sig)
			cancel()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
