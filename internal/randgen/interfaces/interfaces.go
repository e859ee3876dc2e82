// Package interfaces はrandgenコマンドで使用するインターフェースを定義します
package interfaces

import "io"

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}

// EntropySource は自動シード用のエントロピー列を供給するインターフェース
type EntropySource interface {
	Bytes() ([]byte, error)
}

// Writer は出力を書き込むインターフェース
type Writer interface {
	io.Writer
}
