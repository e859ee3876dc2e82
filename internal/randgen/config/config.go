// Package config はrandgenコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"os"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	Seed        string
	Count       int
	RangeMin    uint64
	RangeMax    uint64
	Unbiased    bool
	Hex         bool
	Stats       bool
	DebugMode   bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --seed string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdecimal scalar seed; omit to auto-seed from the entropy source")
		fmt.Fprintln(flag.CommandLine.Output(), "  -s string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdecimal scalar seed (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -c int")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tnumber of values to draw (default 10)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --min uint")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tlower bound of the inclusive range (used with --max)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --max uint")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tupper bound of the inclusive range; enables range mode when set")
		fmt.Fprintln(flag.CommandLine.Output(), "  --unbiased")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tuse rejection sampling instead of modulo reduction in range mode")
		fmt.Fprintln(flag.CommandLine.Output(), "  -x\tprint values in hexadecimal")
		fmt.Fprintln(flag.CommandLine.Output(), "  --stats")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tprint a per-value distribution summary instead of raw draws")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// シードフラグ
	flag.StringVar(&config.Seed, "seed", "", "decimal scalar seed; omit to auto-seed from the entropy source")
	flag.StringVar(&config.Seed, "s", "", "decimal scalar seed (shorthand)")

	// 出力する乱数の個数
	flag.IntVar(&config.Count, "c", 10, "number of values to draw")

	// 範囲モード
	flag.Uint64Var(&config.RangeMin, "min", 0, "lower bound of the inclusive range (used with --max)")
	flag.Uint64Var(&config.RangeMax, "max", 0, "upper bound of the inclusive range; enables range mode when set")
	flag.BoolVar(&config.Unbiased, "unbiased", false, "use rejection sampling instead of modulo reduction in range mode")

	// 16進数出力
	flag.BoolVar(&config.Hex, "x", false, "print values in hexadecimal")

	// 分布サマリ
	flag.BoolVar(&config.Stats, "stats", false, "print a per-value distribution summary instead of raw draws")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("randgen version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}
