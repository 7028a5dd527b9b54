// Package server publishes the current contact sequence as a vCard feed on localhost.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// feedSnapshot is one rendered version of the feed and its cache validators.
type feedSnapshot struct {
	data         []byte
	etag         string
	lastModified time.Time
}

// FeedServer serves the latest published contacts as text/vcard.
// Address books that subscribe to a CardDAV-less URL can poll it.
type FeedServer struct {
	// Readers never block on Publish: each publish swaps a complete snapshot.
	feed atomic.Pointer[feedSnapshot]
	Port string
}

// NewFeedServer creates a server bound to 127.0.0.1:port once started.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{Port: port}
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleFeed)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Ready reports whether a feed has been published. Until then requests get 503.
func (s *FeedServer) Ready() bool {
	return s.feed.Load() != nil
}

// Publish renders contacts as vCards and makes them the served content.
// An unchanged rendering keeps its ETag and Last-Modified.
func (s *FeedServer) Publish(contacts []contact.Contact) error {
	var buf bytes.Buffer
	if err := contact.EncodeVCards(&buf, contacts); err != nil {
		return err
	}

	hash := sha256.Sum256(buf.Bytes())
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	if prev := s.feed.Load(); prev != nil && prev.etag == etag {
		return nil
	}

	s.feed.Store(&feedSnapshot{
		data:         buf.Bytes(),
		etag:         etag,
		lastModified: time.Now().UTC().Truncate(time.Second),
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyCount, len(contacts),
		config.LogKeySizeBytes, buf.Len(),
		config.LogKeyETag, etag,
	)
	return nil
}

// handleFeed serves the vCard stream with conditional GET support.
func (s *FeedServer) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	feed := s.feed.Load()
	if feed == nil {
		// Nothing published yet: the initial list is still loading.
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextVCard)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, feed.etag)

	// ServeContent handles HEAD, If-None-Match, If-Modified-Since and ranges.
	http.ServeContent(w, r, config.ExportFileName, feed.lastModified, bytes.NewReader(feed.data))
}
