// hilbert maps between grid coordinates and Hilbert curve distances, and
// prints whole curves for downstream renderers.
//
// Usage:
//
//	hilbert [-config hilbert.yaml] coord -level 3 -d 42
//	hilbert distance -level 3 -x 7 -y 7
//	hilbert enumerate -level 6 [-workers 8] [-format text|cbor]
//	hilbert verify -level 10
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/muratgu/hilbert"
	"github.com/muratgu/hilbert/internal/config"
)

const configEnv = "HILBERT_CONFIG"

var errUsage = errors.New("usage: hilbert [-config path] coord|distance|enumerate|verify [flags]")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("hilbert", flag.ContinueOnError)
	global.SetOutput(stderr)
	cfgPath := global.String("config", os.Getenv(configEnv), "YAML config file (env "+configEnv+")")
	if err := global.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	hilbert.SetLogger(log)

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, cmdArgs := rest[0], rest[1:]
	slog.Debug("command", "name", cmd, "config", *cfgPath)

	out := bufio.NewWriter(stdout)
	var err error
	switch cmd {
	case "coord":
		err = runCoord(cfg, cmdArgs, out, stderr)
	case "distance":
		err = runDistance(cfg, cmdArgs, out, stderr)
	case "enumerate":
		err = runEnumerate(ctx, cfg, cmdArgs, out, stderr)
	case "verify":
		err = runVerify(cfg, cmdArgs, out, stderr)
	default:
		err = fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runCoord(cfg config.Config, args []string, out io.Writer, stderr io.Writer) error {
	fs := newFlagSet("coord", stderr)
	level := fs.Int("level", cfg.Level, "curve level, grid side is 2^level")
	d := fs.Uint64("d", 0, "distance along the curve")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := hilbert.DistanceToCoord(*level, *d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d %d\n", p.X, p.Y)
	return err
}

func runDistance(cfg config.Config, args []string, out io.Writer, stderr io.Writer) error {
	fs := newFlagSet("distance", stderr)
	level := fs.Int("level", cfg.Level, "curve level, grid side is 2^level")
	x := fs.Uint64("x", 0, "x coordinate")
	y := fs.Uint64("y", 0, "y coordinate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *x > math.MaxUint32 || *y > math.MaxUint32 {
		return fmt.Errorf("%w: coordinate (%d,%d) exceeds 32 bits", hilbert.ErrInvalidInput, *x, *y)
	}

	d, err := hilbert.CoordToDistance(*level, uint32(*x), uint32(*y))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d\n", d)
	return err
}

func runEnumerate(ctx context.Context, cfg config.Config, args []string, out io.Writer, stderr io.Writer) error {
	fs := newFlagSet("enumerate", stderr)
	fs.IntVar(&cfg.Level, "level", cfg.Level, "curve level, grid side is 2^level")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers, 0 for GOMAXPROCS")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or cbor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	points, err := hilbert.EnumerateParallel(ctx, cfg.Level, cfg.Workers)
	if err != nil {
		return err
	}
	slog.Info("enumerated", "level", cfg.Level, "points", len(points), "format", cfg.Format)

	if cfg.Format == config.FormatCBOR {
		cc, err := hilbert.NewCurveCodec()
		if err != nil {
			return err
		}
		data, err := cc.EncodeCurveV1(cfg.Level, points)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	for _, p := range points {
		if _, err := fmt.Fprintf(out, "%d %d\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func runVerify(cfg config.Config, args []string, out io.Writer, stderr io.Writer) error {
	fs := newFlagSet("verify", stderr)
	level := fs.Int("level", cfg.Level, "curve level, grid side is 2^level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := hilbert.Check(*level); err != nil {
		return fmt.Errorf("level %d: %w", *level, err)
	}
	_, err := fmt.Fprintf(out, "level %d: %d points ok\n", *level, hilbert.Size(*level))
	return err
}
