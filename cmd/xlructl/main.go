// xlructl 是 xlru 缓存的命令行工具，用于回放访问序列、压测和校验配置。
//
// 用法:
//
//	xlructl <命令> [命令参数]
//
// 命令:
//
//	replay         逐行执行 put/get/peek/del 操作并输出查询结果
//	bench          多 goroutine zipf 负载压测，输出命中率
//	check-config   加载并校验配置文件
//
// replay 输入格式（每行一条，# 开头为注释）:
//
//	put <key> [value]   写入；省略 value 时写入空值（found <nil>）
//	get <key>           查询并提升为最近使用，输出 found <v> 或 not found
//	peek <key>          查询但不提升
//	del <key>           删除，输出 deleted 或 not found
//	len                 输出当前条目数
//	keys                按最久未使用到最近使用输出所有 key
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（配置无效、输入格式错误、文件不存在等）
//	2: 参数错误（未知命令/flag、缺少参数、容量不合法等）
//
// 示例:
//
//	xlructl replay --config lru.yaml --trace ops.txt
//	echo "put a 1\nget a" | xlructl replay --capacity 2
//	xlructl bench --capacity 1000 --keys 10000 --ops 1000000 --workers 8
//	xlructl check-config lru.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	app := createApp(os.Stdin, os.Stdout, os.Stderr)
	return execute(ctx, app, os.Args)
}

// createApp 创建 CLI 应用，输入输出可注入以便测试。
func createApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xlructl",
		Usage:     "固定容量 LRU 缓存命令行工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands:  createCommands(),
		Authors: []any{
			"XKit Team",
		},
		OnUsageError: onUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 execute 统一映射退出码。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

// execute 运行应用并把错误映射为退出码。
func execute(ctx context.Context, app *cli.Command, args []string) int {
	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	stderr := app.ErrWriter
	if stderr == nil {
		stderr = os.Stderr
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	// 未知命令等 ExitCoder 错误已由 ExitErrHandler 输出
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

// isCLIUsageError 识别未经 OnUsageError 包装的 flag 解析错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"Required flag",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// setupSignalHandler 第一次 SIGINT/SIGTERM 取消 context，第二次强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
