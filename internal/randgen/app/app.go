// Package app はrandgenコマンドのメインロジックを実装します
package app

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shiroemons/go-mtrand/internal/randgen/config"
	"github.com/shiroemons/go-mtrand/internal/randgen/interfaces"
	"github.com/shiroemons/go-mtrand/pkg/entropy"
	"github.com/shiroemons/go-mtrand/pkg/mtrand"
)

// statsSpanLimit は分布サマリで扱える範囲の大きさの上限です。
const statsSpanLimit = 65536

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	logger  interfaces.Logger
	entropy interfaces.EntropySource
	out     io.Writer
}

// Options はAppの設定オプション
type Options struct {
	Logger  interfaces.Logger
	Entropy interfaces.EntropySource
	Out     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのLoggerを設定
	logger := opts.Logger
	if logger == nil {
		logger = config.NewDebugLogger(cfg.DebugMode)
	}

	// デフォルトのエントロピーソースを設定
	var src interfaces.EntropySource
	if opts.Entropy != nil {
		src = opts.Entropy
	} else {
		src = entropy.NewSystem()
	}

	// デフォルトの出力先を設定
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &App{
		config:  cfg,
		logger:  logger,
		entropy: src,
		out:     out,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run() error {
	if a.config.Count < 1 {
		return ErrInvalidCount
	}
	if err := a.validateRange(); err != nil {
		return err
	}

	gen, err := a.newGenerator()
	if err != nil {
		return err
	}

	if a.config.Stats {
		return a.runStats(gen)
	}
	return a.runDraws(gen)
}

// newGenerator は設定に従って生成器を構築します
func (a *App) newGenerator() (*mtrand.Generator, error) {
	if a.config.Seed != "" {
		seed, err := strconv.ParseUint(a.config.Seed, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
		}
		a.logger.Printf("シード %d で初期化します\n", seed)
		return mtrand.NewFromSeed(uint32(seed)), nil
	}

	a.logger.Printf("エントロピーソースから自動シードします\n")
	gen, err := mtrand.NewWithSource(a.entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedEntropy, err)
	}
	return gen, nil
}

// rangeMode は範囲モードが指定されているかを返します
func (a *App) rangeMode() bool {
	return a.config.RangeMax > 0
}

// validateRange は範囲フラグの境界を検証します
func (a *App) validateRange() error {
	if !a.rangeMode() {
		return nil
	}
	if a.config.RangeMin > math.MaxUint32 || a.config.RangeMax > math.MaxUint32 {
		return ErrRangeBounds
	}
	return nil
}

// draw は設定に従って乱数を1つ引きます
func (a *App) draw(gen *mtrand.Generator) (uint32, error) {
	if !a.rangeMode() {
		return gen.Next(), nil
	}
	min := uint32(a.config.RangeMin)
	max := uint32(a.config.RangeMax)
	if a.config.Unbiased {
		return gen.NextInRangeUnbiased(min, max)
	}
	return gen.NextInRange(min, max)
}

// runDraws は乱数を引いて1行ずつ出力します
func (a *App) runDraws(gen *mtrand.Generator) error {
	format := "%d\n"
	if a.config.Hex {
		format = "%08x\n"
	}

	for i := 0; i < a.config.Count; i++ {
		v, err := a.draw(gen)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, format, v)
	}
	return nil
}

// runStats は範囲内の値ごとの出現回数を集計して出力します
func (a *App) runStats(gen *mtrand.Generator) error {
	if !a.rangeMode() {
		return ErrStatsRange
	}
	min := uint32(a.config.RangeMin)
	max := uint32(a.config.RangeMax)
	if min >= max {
		return mtrand.ErrInvalidRange
	}
	span := uint64(max) - uint64(min) + 1
	if span > statsSpanLimit {
		return ErrStatsRangeTooWide
	}

	a.logger.Printf("範囲 [%d, %d] から %d 回抽選します\n", min, max, a.config.Count)

	counts := make([]uint64, span)
	for i := 0; i < a.config.Count; i++ {
		v, err := a.draw(gen)
		if err != nil {
			return err
		}
		counts[v-min]++
	}

	// 桁区切り付きで出力する
	p := message.NewPrinter(language.Japanese)
	for i, c := range counts {
		p.Fprintf(a.out, "%d\t%d\n", uint64(min)+uint64(i), c)
	}
	p.Fprintf(a.out, "合計\t%d\n", a.config.Count)
	return nil
}
