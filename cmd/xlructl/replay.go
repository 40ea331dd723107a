package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xlrukit/pkg/config/xconf"
	"github.com/omeyang/xlrukit/pkg/observability/xlog"
	"github.com/omeyang/xlrukit/pkg/util/xlru"
)

var (
	errUnknownOp = errors.New("unknown operation")
	errBadArgs   = errors.New("wrong number of arguments")
)

// createReplayCommand 创建 replay 子命令。
func createReplayCommand() *cli.Command {
	return &cli.Command{
		Name:         "replay",
		Usage:        "逐行回放 put/get/peek/del 操作",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件 (yaml/json)，缺省使用默认配置",
			},
			&cli.StringFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "操作序列文件，缺省从 stdin 读取",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "覆盖配置中的 cache.capacity",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "监视配置文件，回放期间热更新日志级别",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdReplay(ctx, cmd)
		},
	}
}

func cmdReplay(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()
	configPath := cmd.String("config")

	s, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	if cmd.IsSet("capacity") {
		s.Cache.Capacity = cmd.Int("capacity")
	}

	logger, cleanup, err := newLogger(s, root.ErrWriter)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	if cmd.Bool("watch") {
		if configPath == "" {
			return usagef("--watch 需要同时指定 --config")
		}
		w, err := watchLogLevel(ctx, configPath, logger)
		if err != nil {
			return err
		}
		w.StartAsync()
		defer func() { _ = w.Stop() }()
	}

	in := root.Reader
	if in == nil {
		in = os.Stdin
	}
	if tracePath := cmd.String("trace"); tracePath != "" {
		f, err := os.Open(tracePath)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	r, err := newReplayer(s, logger, root.Writer)
	if err != nil {
		return err
	}
	defer func() { _ = r.close(context.Background()) }()

	return r.run(ctx, in)
}

// watchLogLevel 监视配置文件，只把 log.level 应用到运行中的 logger。
// 容量在构造后不可变，重载时忽略。
func watchLogLevel(ctx context.Context, path string, logger xlog.LoggerWithLevel) (*xconf.Watcher, error) {
	return xconf.Watch(path, func(s *xconf.Settings, err error) {
		if err != nil {
			logger.Warn(ctx, "config reload failed", xlog.Path(path), xlog.Err(err))
			return
		}
		logger.SetLevel(s.LogLevel())
		logger.Info(ctx, "log level reloaded", xlog.Path(path), slog.String("level", s.LogLevel().String()))
	})
}

// replayer 把文本操作映射到缓存。值为 *string，nil 表示写入的空值。
type replayer struct {
	cache  *xlru.Cache[string, *string]
	meter  *meter
	logger xlog.Logger
	out    io.Writer
}

func newReplayer(s *xconf.Settings, logger xlog.Logger, out io.Writer) (*replayer, error) {
	if out == nil {
		out = os.Stdout
	}
	m, err := newMeter(s.Cache.Name)
	if err != nil {
		return nil, err
	}

	cache, err := xlru.New(xlru.Config{Capacity: s.Cache.Capacity},
		xlru.WithRecorder[string, *string](m.recorder),
		xlru.WithOnEvicted(func(key string, _ *string) {
			logger.Debug(context.Background(), "evicted", xlog.Key(key))
		}),
	)
	if err != nil {
		_ = m.shutdown(context.Background())
		if errors.Is(err, xlru.ErrInvalidCapacity) {
			return nil, &usageError{err: err}
		}
		return nil, err
	}
	return &replayer{cache: cache, meter: m, logger: logger, out: out}, nil
}

func (r *replayer) close(ctx context.Context) error {
	return r.meter.shutdown(ctx)
}

// run 逐行执行，遇到第一个错误即停止。
func (r *replayer) run(ctx context.Context, in io.Reader) error {
	r.logger.Info(ctx, "replay started", xlog.Capacity(r.cache.Capacity()))

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.exec(strings.Fields(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read trace: %w", err)
	}

	totals, err := r.meter.totals(ctx)
	if err != nil {
		return err
	}
	r.logger.Info(ctx, "replay finished",
		xlog.Count(int64(lineNo)),
		xlog.Size(r.cache.Len()),
		slog.Float64("hit_ratio", totals.HitRatio()),
	)
	return nil
}

func (r *replayer) exec(fields []string) error {
	op, args := strings.ToLower(fields[0]), fields[1:]
	switch op {
	case "put":
		if len(args) < 1 {
			return fmt.Errorf("%w: put <key> [value]", errBadArgs)
		}
		var value *string
		if len(args) > 1 {
			v := strings.Join(args[1:], " ")
			value = &v
		}
		r.cache.Put(args[0], value)
		return nil

	case "get", "peek":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s <key>", errBadArgs, op)
		}
		var res xlru.Result[*string]
		if op == "get" {
			res = r.cache.Get(args[0])
		} else {
			res = r.cache.Peek(args[0])
		}
		return r.println(formatResult(res))

	case "del":
		if len(args) != 1 {
			return fmt.Errorf("%w: del <key>", errBadArgs)
		}
		if r.cache.Remove(args[0]) {
			return r.println("deleted")
		}
		return r.println("not found")

	case "len":
		return r.println(fmt.Sprint(r.cache.Len()))

	case "keys":
		return r.println(strings.Join(r.cache.Keys(), " "))

	default:
		return fmt.Errorf("%w %q", errUnknownOp, fields[0])
	}
}

func (r *replayer) println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

// formatResult 输出 found <v>、found <nil> 或 not found。
func formatResult(res xlru.Result[*string]) string {
	v, ok := res.Value()
	switch {
	case !ok:
		return "not found"
	case v == nil:
		return "found <nil>"
	default:
		return "found " + *v
	}
}
