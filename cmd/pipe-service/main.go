// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command pipe-service serves named byte pipes over HTTP.
//
// Usage:
//
//	go run ./cmd/pipe-service -addr :8080 -block 128
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.hybscloud.com/pipe"
	"code.hybscloud.com/pipe/internal/pipeapi"
)

const shutdownTimeout = 5 * time.Second

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	block := flag.Int("block", pipe.DefaultBlockSize, "slots per pipe block")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *addr, *block); err != nil {
		log.Fatal(err)
	}
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, addr string, block int) error {
	server := &http.Server{
		Addr:    addr,
		Handler: newHandler(block),
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("pipe service listening on %s", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("pipe service shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newHandler(block int) http.Handler {
	return pipeapi.NewServer(pipeapi.NewRegistry(block))
}
