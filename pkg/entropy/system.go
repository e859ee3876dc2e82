// Package entropy は自動シード用のエントロピーソースを提供します。
// 各ソースはホスト環境の読み取り値をバイト列として固定順で連結して
// 返します。値の質は「プロセスの起動ごとに変化する」こと以上を
// 保証しません。
package entropy

import (
	"encoding/binary"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultVolumePath は容量の読み取りに使う既定の基準ボリュームです。
const DefaultVolumePath = "/"

// tickFrequency は単調タイマーの1秒あたりのティック数です。
const tickFrequency = int64(time.Second / time.Nanosecond)

// processStart は単調タイマーの基準点です。
var processStart = time.Now()

// System はホスト環境からエントロピーを収集するソースです。
// マシン名、現在時刻の文字列表現、高分解能タイマーの読み取り値、
// タイマー周波数、基準ボリュームの空き容量と総容量を固定順で
// 連結します。
type System struct {
	// VolumePath は容量を読み取る基準ボリュームのパスです。
	VolumePath string
}

// NewSystem は既定の基準ボリュームを使う System を返します。
func NewSystem() *System {
	return &System{VolumePath: DefaultVolumePath}
}

// Bytes はエントロピー列を収集して返します。
// いずれかの読み取りに失敗した場合は ErrUnavailable を包む
// SourceError を返します。
func (s *System) Bytes() ([]byte, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, NewSourceError("ホスト名の取得", "", err)
	}

	now := time.Now()
	var st unix.Statfs_t
	if err := unix.Statfs(s.VolumePath, &st); err != nil {
		return nil, NewSourceError("ボリューム容量の取得", s.VolumePath, err)
	}
	free := uint64(st.Bavail) * uint64(st.Bsize)
	total := uint64(st.Blocks) * uint64(st.Bsize)

	b := make([]byte, 0, len(host)+26+8*4)
	b = append(b, host...)
	b = append(b, now.Format("2006-01-02 15:04:05.000000")...)
	b = binary.LittleEndian.AppendUint64(b, uint64(now.Sub(processStart).Nanoseconds()))
	b = binary.LittleEndian.AppendUint64(b, uint64(tickFrequency))
	b = binary.LittleEndian.AppendUint64(b, free)
	b = binary.LittleEndian.AppendUint64(b, total)
	return b, nil
}
