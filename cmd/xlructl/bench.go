package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xlrukit/pkg/observability/xlog"
	"github.com/omeyang/xlrukit/pkg/observability/xmetrics"
	"github.com/omeyang/xlrukit/pkg/util/xlru"
)

// 压测默认参数
const (
	defaultBenchCapacity = 1000
	defaultBenchKeys     = 10000
	defaultBenchOps      = 1000000
	defaultBenchWorkers  = 4
	defaultBenchSkew     = 1.1

	// ctxCheckMask 每 1024 次操作检查一次取消
	ctxCheckMask = 1<<10 - 1
)

// createBenchCommand 创建 bench 子命令。
func createBenchCommand() *cli.Command {
	return &cli.Command{
		Name:         "bench",
		Usage:        "多 goroutine zipf 负载压测，输出命中率",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "capacity", Usage: "缓存容量", Value: defaultBenchCapacity},
			&cli.IntFlag{Name: "keys", Usage: "key 空间大小", Value: defaultBenchKeys},
			&cli.IntFlag{Name: "ops", Usage: "总操作数", Value: defaultBenchOps},
			&cli.IntFlag{Name: "workers", Usage: "并发 goroutine 数", Value: defaultBenchWorkers},
			&cli.IntFlag{Name: "seed", Usage: "随机种子", Value: 1},
			&cli.FloatFlag{Name: "skew", Usage: "zipf 偏斜参数 s，必须大于 1", Value: defaultBenchSkew},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := benchConfig{
				capacity: cmd.Int("capacity"),
				keys:     cmd.Int("keys"),
				ops:      cmd.Int("ops"),
				workers:  cmd.Int("workers"),
				seed:     uint64(cmd.Int("seed")),
				skew:     cmd.Float("skew"),
			}
			return cmdBench(ctx, cfg, cmd.Root().Writer, cmd.Root().ErrWriter)
		},
	}
}

type benchConfig struct {
	capacity int
	keys     int
	ops      int
	workers  int
	seed     uint64
	skew     float64
}

func (c benchConfig) validate() error {
	var errs []error
	if c.capacity <= 0 {
		errs = append(errs, fmt.Errorf("--capacity=%d: %w", c.capacity, xlru.ErrInvalidCapacity))
	}
	if c.keys <= 0 {
		errs = append(errs, fmt.Errorf("--keys must be greater than 0, got %d", c.keys))
	}
	if c.ops < 0 {
		errs = append(errs, fmt.Errorf("--ops must not be negative, got %d", c.ops))
	}
	if c.workers <= 0 {
		errs = append(errs, fmt.Errorf("--workers must be greater than 0, got %d", c.workers))
	}
	if c.skew <= 1 {
		errs = append(errs, fmt.Errorf("--skew must be greater than 1, got %g", c.skew))
	}
	if err := errors.Join(errs...); err != nil {
		return &usageError{err: err}
	}
	return nil
}

// opsFor 把总操作数均分给各 worker，余数分给前几个。
func (c benchConfig) opsFor(worker int) int {
	n := c.ops / c.workers
	if worker < c.ops%c.workers {
		n++
	}
	return n
}

type benchResult struct {
	totals  xmetrics.Totals
	elapsed time.Duration
}

func cmdBench(ctx context.Context, cfg benchConfig, out, stderr io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger, cleanup, err := xlog.New().
		SetOutput(stderr).
		SetAttrs(xlog.Component("xlructl"), xlog.Operation("bench")).
		Build()
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	res, err := runBench(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return printBench(out, cfg, res)
}

// runBench 每个 worker 用独立的 PCG 源生成 zipf key：命中则结束，未命中则写入。
func runBench(ctx context.Context, cfg benchConfig, logger xlog.Logger) (benchResult, error) {
	m, err := newMeter("bench")
	if err != nil {
		return benchResult{}, err
	}
	defer func() { _ = m.shutdown(context.Background()) }()

	cache, err := xlru.New(xlru.Config{Capacity: cfg.capacity}, xlru.WithRecorder[uint64, uint64](m.recorder))
	if err != nil {
		return benchResult{}, err
	}
	unregister, err := m.recorder.Observe(cache)
	if err != nil {
		return benchResult{}, err
	}
	defer func() { _ = unregister() }()

	logger.Info(ctx, "bench started",
		xlog.Capacity(cfg.capacity),
		xlog.Count(int64(cfg.ops)),
		slog.Int("workers", cfg.workers),
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for w := range cfg.workers {
		n := cfg.opsFor(w)
		rng := rand.New(rand.NewPCG(cfg.seed, uint64(w)))
		zipf := rand.NewZipf(rng, cfg.skew, 1, uint64(cfg.keys-1))
		g.Go(func() error {
			for i := range n {
				if i&ctxCheckMask == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				key := zipf.Uint64()
				if !cache.Get(key).IsFound() {
					cache.Put(key, key)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}
	elapsed := time.Since(start)

	totals, err := m.totals(ctx)
	if err != nil {
		return benchResult{}, err
	}
	logger.Info(ctx, "bench finished", xlog.Duration(elapsed), xlog.Size(cache.Len()))
	return benchResult{totals: totals, elapsed: elapsed}, nil
}

func printBench(out io.Writer, cfg benchConfig, res benchResult) error {
	t := res.totals
	_, err := fmt.Fprintf(out,
		"ops        %d\nhits       %d\nmisses     %d\nhit ratio  %.4f\ninserts    %d\nevictions  %d\nsize       %d/%d\nelapsed    %s\n",
		cfg.ops, t.Hits, t.Misses, t.HitRatio(), t.Inserts, t.Evictions, t.Size, t.Capacity, res.elapsed.Round(time.Microsecond),
	)
	return err
}
