package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xlrukit/pkg/config/xconf"
	"github.com/omeyang/xlrukit/pkg/observability/xlog"
)

// usageError 表示参数错误，退出码为 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// onUsageError 把 flag 解析错误统一转成 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createReplayCommand(),
		createBenchCommand(),
		createCheckConfigCommand(),
	}
}

// createCheckConfigCommand 创建 check-config 子命令。
func createCheckConfigCommand() *cli.Command {
	return &cli.Command{
		Name:         "check-config",
		Usage:        "加载并校验配置文件",
		ArgsUsage:    "<file>",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usagef("check-config 需要且只需要一个配置文件路径")
			}
			return cmdCheckConfig(cmd.Args().First(), cmd.Root().Writer)
		},
	}
}

func cmdCheckConfig(path string, out io.Writer) error {
	s, err := xconf.Load(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "ok: cache=%s capacity=%d log=%s/%s\n",
		s.Cache.Name, s.Cache.Capacity, s.LogLevel(), s.Log.Format)
	return err
}

// loadSettings 加载配置，路径为空时使用默认配置。
func loadSettings(path string) (*xconf.Settings, error) {
	if path == "" {
		s := xconf.Default()
		return &s, nil
	}
	return xconf.Load(path)
}

// newLogger 按配置创建日志实例。配置了 log.file 时写入轮转文件，否则写入 stderr。
func newLogger(s *xconf.Settings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	if stderr == nil {
		stderr = os.Stderr
	}
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format).
		SetAttrs(xlog.Component("xlructl"), xlog.Cache(s.Cache.Name))
	if s.Log.File != "" {
		b = b.SetRotation(xlog.Rotation{Filename: s.Log.File})
	}
	return b.Build()
}
