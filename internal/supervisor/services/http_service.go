// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/logging"
)

// HTTPServer matches the lifecycle methods of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// ReadinessSetter receives readiness transitions. *api.Handler satisfies it.
type ReadinessSetter interface {
	SetReady(ready bool)
}

// HTTPServerService runs an HTTP server under suture.
//
//  1. Starts ListenAndServe in a goroutine and marks the API ready
//  2. Waits for context cancellation or a server error
//  3. Marks the API not ready, then drains connections with Shutdown
//
// Example usage:
//
//	server := &http.Server{Addr: ":8080", Handler: router}
//	svc := services.NewHTTPServerService(server, 10*time.Second).WithReadiness(handler)
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	readiness       ReadinessSetter
	name            string
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// WithReadiness reports serving state to r.
func (h *HTTPServerService) WithReadiness(r ReadinessSetter) *HTTPServerService {
	h.readiness = r
	return h
}

// Serve implements suture.Service. http.ErrServerClosed is not an error.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.setReady(true)

	select {
	case err := <-errCh:
		h.setReady(false)
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// Fail readiness first so load balancers stop routing here.
		h.setReady(false)
		logging.Info().Dur("timeout", h.shutdownTimeout).Msg("Draining HTTP connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

func (h *HTTPServerService) setReady(ready bool) {
	if h.readiness != nil {
		h.readiness.SetReady(ready)
	}
}

// String implements fmt.Stringer. Suture uses it in log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
