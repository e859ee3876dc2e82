package entropy

import (
	"encoding/binary"
	"os"
	"sync/atomic"
	"time"
)

// Portable はプラットフォーム固有のAPIに依存しないソースです。
// ホスト名、プロセスID、単調タイマーの読み取り値、呼び出しごとに
// 増加するカウンタを固定順で連結します。ボリューム容量を持たない
// 環境や、System が利用できない環境向けの代替実装です。
type Portable struct {
	counter atomic.Uint64
}

// NewPortable は新しい Portable を返します。
func NewPortable() *Portable {
	return &Portable{}
}

// Bytes はエントロピー列を収集して返します。
// ホスト名の取得に失敗した場合のみエラーを返します。
func (p *Portable) Bytes() ([]byte, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, NewSourceError("ホスト名の取得", "", err)
	}

	b := make([]byte, 0, len(host)+8*3)
	b = append(b, host...)
	b = binary.LittleEndian.AppendUint64(b, uint64(os.Getpid()))
	b = binary.LittleEndian.AppendUint64(b, uint64(time.Since(processStart).Nanoseconds()))
	b = binary.LittleEndian.AppendUint64(b, p.counter.Add(1))
	return b, nil
}
