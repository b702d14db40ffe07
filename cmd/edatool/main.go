package main

import (
	"context"
	"delivery-eda-service/internal/adapters/loader"
	"delivery-eda-service/internal/config"
	"delivery-eda-service/internal/platform/logger"
	"delivery-eda-service/internal/services"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", config.Get("EDA_FILE", ""), "dataset to analyse (.csv, .tsv or .xlsx)")
	watch := flag.Bool("watch", false, "re-run the analysis whenever the file changes")
	flag.Parse()

	logger.Init(config.Get("LOG_LEVEL", "warn"), "text")

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: edatool -file <dataset> [-watch]")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := services.NewDatasetPreparer(loader.NewFileLoader())

	if err := run(ctx, p, *file, os.Stdout); err != nil {
		slog.Error("analysis failed", "file", *file, "err", err)
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}

	if err := watchFile(ctx, *file, func() {
		if err := run(ctx, p, *file, os.Stdout); err != nil {
			slog.Error("analysis failed", "file", *file, "err", err)
		}
	}); err != nil {
		slog.Error("watch failed", "err", err)
		os.Exit(1)
	}
}

// run loads, reports and cleans one file and prints the result.
func run(ctx context.Context, p *services.DatasetPreparer, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	sess, err := p.Prepare(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}
	return printReport(out, sess)
}

// watchFile calls fn after the file is written or replaced. The parent
// directory is watched so editors that save by rename are still seen.
func watchFile(ctx context.Context, path string, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	slog.Info("watching for changes", "file", abs)

	// editors often emit several events per save
	const settle = 250 * time.Millisecond
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				timer.Reset(settle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		case <-timer.C:
			fn()
		}
	}
}
