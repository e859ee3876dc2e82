package app

import "errors"

var (
	// ErrInvalidSeed はシードの解析に失敗した場合のエラー
	ErrInvalidSeed = errors.New("シードの解析に失敗しました")

	// ErrSeedEntropy はエントロピーソースからのシードに失敗した場合のエラー
	ErrSeedEntropy = errors.New("エントロピーソースからのシードに失敗しました")

	// ErrInvalidCount は出力個数が不正な場合のエラー
	ErrInvalidCount = errors.New("出力個数は1以上を指定してください")

	// ErrRangeBounds は範囲の境界が32ビットを超える場合のエラー
	ErrRangeBounds = errors.New("範囲の境界が32ビットを超えています")

	// ErrStatsRange は分布サマリに範囲指定がない場合のエラー
	ErrStatsRange = errors.New("--stats には --max による範囲指定が必要です")

	// ErrStatsRangeTooWide は分布サマリの範囲が広すぎる場合のエラー
	ErrStatsRangeTooWide = errors.New("分布サマリの範囲が広すぎます (最大65536)")
)
