package mtrand

import "errors"

var (
	// ErrInvalidRange は min >= max となる範囲が指定された場合のエラー
	ErrInvalidRange = errors.New("無効な範囲です (min >= max)")

	// ErrOverflow は乱数値が符号付き32ビット整数で表現できない場合のエラー
	ErrOverflow = errors.New("乱数値が符号付き32ビット整数の範囲を超えました")

	// ErrEmptyKey は空のシードキーが指定された場合のエラー
	ErrEmptyKey = errors.New("シードキーが空です")
)
