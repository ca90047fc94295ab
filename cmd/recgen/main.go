package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"perfplayground/internal/generate"
	"perfplayground/internal/model"
)

const (
	formatText      = "text"
	formatJSONLines = "json_lines"
)

type options struct {
	count    int
	format   string
	rate     float64
	duration time.Duration
}

func main() {
	var (
		opt         options
		durationStr string
	)
	flag.IntVar(&opt.count, "n", 10, "Records to emit. 0 means run until interrupted or --duration elapses")
	flag.StringVar(&opt.format, "format", formatText, "Output format: text or json_lines")
	flag.Float64Var(&opt.rate, "rate", 0, "Records per second. 0 writes without delay")
	flag.StringVar(&durationStr, "duration", "", "Optional run duration (e.g., 30s, 2m)")
	flag.Parse()

	opt.format = normalizeFormat(opt.format)
	if !isSupported(opt.format) {
		fmt.Fprintf(os.Stderr, "unsupported format: %s\n", opt.format)
		os.Exit(2)
	}
	if durationStr != "" {
		d, err := time.ParseDuration(durationStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid duration: %v\n", err)
			os.Exit(2)
		}
		opt.duration = d
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if opt.duration > 0 {
		var c context.CancelFunc
		ctx, c = context.WithTimeout(ctx, opt.duration)
		defer c()
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if _, err := run(ctx, w, generate.New(), opt); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func normalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	switch f {
	case "json", "ndjson", "jsonl":
		return formatJSONLines
	case "plain", "txt":
		return formatText
	default:
		return f
	}
}

func isSupported(f string) bool {
	switch f {
	case formatText, formatJSONLines:
		return true
	default:
		return false
	}
}

// run writes records until count is reached or ctx is done and returns how
// many were written.
func run(ctx context.Context, w *bufio.Writer, gen *generate.Generator, opt options) (int, error) {
	var tick <-chan time.Time
	if opt.rate > 0 {
		interval := time.Duration(float64(time.Second) / opt.rate)
		if interval <= 0 {
			interval = time.Millisecond
		}
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	written := 0
	for opt.count == 0 || written < opt.count {
		if tick != nil {
			select {
			case <-ctx.Done():
				return written, nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return written, nil
		}
		if err := writeRecord(w, opt.format, gen.Next()); err != nil {
			return written, err
		}
		written++
		if tick != nil {
			if err := w.Flush(); err != nil {
				return written, err
			}
		}
	}
	return written, w.Flush()
}

func writeRecord(w io.Writer, format string, r model.Record) error {
	if format == formatJSONLines {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", r.ID, err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	_, err := fmt.Fprintf(w, "#%d %s the %s %s, loves %s and %s, behavior %s %s\n",
		r.ID, r.Name, r.Color, r.Breed, r.Toy, r.Food, r.Bones(), r.Emoji)
	return err
}
