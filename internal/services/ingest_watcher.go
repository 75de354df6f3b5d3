package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"recontrack/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// IngestWatcher monitors a drop directory and feeds hostname list files into
// the bulk ingestion pipeline. Files are named <target>__<rootdomain>.txt;
// anything else is ignored. Processed files are removed.
type IngestWatcher struct {
	ingest IngestServiceMethods
	dir    string
	logger *logger.Logger
}

func NewIngestWatcher(ingest IngestServiceMethods, dir string) *IngestWatcher {
	return &IngestWatcher{
		ingest: ingest,
		dir:    dir,
		logger: logger.NewLogger(logrus.InfoLevel),
	}
}

func (w *IngestWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	w.logger.WithFields(logger.Fields{"dir": w.dir}).Info("Watching drop directory for hostname lists")

	var mu sync.Mutex
	pending := make(map[string]struct{})

	// Throttle so a file still being written is picked up once, after the
	// writes have settled.
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				mu.Lock()
				pending[event.Name] = struct{}{}
				mu.Unlock()
			}

		case <-ticker.C:
			mu.Lock()
			paths := make([]string, 0, len(pending))
			for path := range pending {
				paths = append(paths, path)
			}
			pending = make(map[string]struct{})
			mu.Unlock()

			for _, path := range paths {
				w.processFile(ctx, path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Error("Drop directory watcher error")

		case <-ctx.Done():
			w.logger.Info("Stopping drop directory watcher")
			return ctx.Err()
		}
	}
}

func (w *IngestWatcher) processFile(ctx context.Context, path string) {
	targetName, rootDomainName, ok := parseDropFileName(path)
	if !ok {
		w.logger.WithFields(logger.Fields{"file": path}).Debug("Ignoring file without target__rootdomain.txt name")
		return
	}

	file, err := os.Open(path)
	if err != nil {
		w.logger.WithError(err).WithField("file", path).Error("Failed to open dropped file")
		return
	}

	created, err := w.ingest.Ingest(ctx, targetName, rootDomainName, file)
	file.Close()
	if err != nil {
		w.logger.WithError(err).WithFields(logrus.Fields{
			"file":        path,
			"target":      targetName,
			"root_domain": rootDomainName,
		}).Error("Ingestion of dropped file failed")
		return
	}

	w.logger.WithTarget(targetName, rootDomainName).WithFields(logrus.Fields{
		"file":    path,
		"created": len(created),
	}).Info("Ingested dropped hostname list")

	if err := os.Remove(path); err != nil {
		w.logger.WithError(err).WithField("file", path).Warn("Failed to remove processed file")
	}
}

// parseDropFileName extracts (target, rootdomain) from a
// <target>__<rootdomain>.txt base name.
func parseDropFileName(path string) (string, string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".txt") {
		return "", "", false
	}
	base = strings.TrimSuffix(base, ".txt")

	parts := strings.SplitN(base, "__", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
