package entropy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable はエントロピーの入力のいずれかが取得できない場合のエラー
	ErrUnavailable = errors.New("エントロピーソースを利用できません")
)

// SourceError はエントロピー収集中のエラー
type SourceError struct {
	Op   string // 失敗した読み取りの種類
	Path string // 対象パス（ボリューム読み取りの場合）
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is は ErrUnavailable とのマッチを可能にします
func (e *SourceError) Is(target error) bool {
	return target == ErrUnavailable
}

// NewSourceError は新しいSourceErrorを作成します
func NewSourceError(op, path string, err error) *SourceError {
	return &SourceError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
