package appmode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
)

// RunSlave serves tasks until ctx is cancelled or the server fails
func RunSlave(ctx context.Context, ai *model.AppInit) error {
	// получить экземпляр сервера
	srv := transport.NewSlaveServer(ai.Address, processor.Processor{})

	// запуск сервера
	srvErr := make(chan error, 1)
	go func() {
		log.Printf("Slave running on %s", srv.Addr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("slave-node %q stopped: %w", ai.Address, err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Server gracefully stopping...")
	}

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown slave-node %q correctly: %w", ai.Address, err)
	}
	log.Printf("Slave-node %q server is closed.", ai.Address)
	return nil
}
