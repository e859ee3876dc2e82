// Package mtrand はメルセンヌ・ツイスタ (MT19937) 疑似乱数生成器を提供します。
// 同じシードからは常に同じ乱数列が得られます（決定性）。
// 暗号学的な安全性はありません。
package mtrand

import (
	"github.com/shiroemons/go-mtrand/pkg/entropy"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	// defaultSeed はシードが与えられないまま乱数を引いた場合に使う既定のシードです。
	defaultSeed = 5489
	// arraySeed はキー配列によるシードの基点となる固定シードです。
	arraySeed = 19650218
)

// EntropySource は自動シード用のエントロピー列を供給するインターフェースです。
// 取得できない場合はエラーを返します。
type EntropySource interface {
	Bytes() ([]byte, error)
}

// Generator はメルセンヌ・ツイスタ (MT19937) 疑似乱数生成器です。
// 状態ベクタとカーソルはインスタンスごとに保持され、インスタンス間で
// 共有されることはありません。同一インスタンスへの並行呼び出しは
// 安全ではないため、呼び出し側で直列化してください。
//
// ゼロ値の Generator は最初の Next 呼び出し時に既定のシード (5489) で
// 初期化されます。
type Generator struct {
	mt     [n]uint32
	mti    int
	seeded bool
	src    EntropySource
}

// New はシステムのエントロピーソースから自動シードした Generator を返します。
// エントロピーの取得に失敗した場合はエラーを返します（フォールバックは
// 行わないため、必要であれば呼び出し側で NewFromSeed を使ってください）。
func New() (*Generator, error) {
	return NewWithSource(entropy.NewSystem())
}

// NewWithSource は指定されたエントロピーソースから自動シードした
// Generator を返します。ソースは Reseed でも再利用されます。
func NewWithSource(src EntropySource) (*Generator, error) {
	g := &Generator{src: src}
	if err := g.seedFromSource(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromSeed は指定されたスカラーシードで初期化した Generator を返します。
func NewFromSeed(seed uint32) *Generator {
	g := &Generator{}
	g.seed(seed)
	return g
}

// NewFromKey は指定されたシードキーで初期化した Generator を返します。
// スカラーシードよりも相関の少ない初期状態が得られます。
// 空のキーは ErrEmptyKey になります。
func NewFromKey(key []uint32) (*Generator, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	g := &Generator{}
	g.seedKey(key)
	return g, nil
}

// Reseed はエントロピーソースから取得したキーで状態を初期化し直します。
// New / NewWithSource で与えられたソースを再利用し、なければシステムの
// エントロピーソースを使います。以前の状態は破棄されます。
func (g *Generator) Reseed() error {
	if g.src == nil {
		g.src = entropy.NewSystem()
	}
	return g.seedFromSource()
}

// seedFromSource はエントロピー列をキーに変換して seedKey を実行します。
func (g *Generator) seedFromSource() error {
	b, err := g.src.Bytes()
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return ErrEmptyKey
	}
	key := make([]uint32, len(b))
	for i, v := range b {
		key[i] = uint32(v)
	}
	g.seedKey(key)
	return nil
}

// seed は指定されたスカラーシードで状態ベクタを初期化します。
func (g *Generator) seed(seed uint32) {
	g.mt[0] = seed
	for g.mti = 1; g.mti < n; g.mti++ {
		g.mt[g.mti] = 1812433253*(g.mt[g.mti-1]^(g.mt[g.mti-1]>>30)) + uint32(g.mti)
	}
	g.seeded = true
}

// seedKey はキー配列で状態ベクタを初期化します。
// 固定シード 19650218 で初期化した後、キーを畳み込む前進パスと
// キーなしの後退パスを実行し、最後に mt[0] を 0x80000000 に固定して
// 初期ベクタが全ゼロにならないことを保証します。
func (g *Generator) seedKey(key []uint32) {
	g.seed(arraySeed)

	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			g.mt[0] = g.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			g.mt[0] = g.mt[n-1]
			i = 1
		}
	}

	g.mt[0] = 0x80000000
	g.mti = n
}

// Next は次の32ビット符号なし乱数を生成して返します。
// 状態ベクタを使い切っている場合は624ワードをまとめて再生成します。
func (g *Generator) Next() uint32 {
	var y uint32
	mag01 := [2]uint32{0x0, matrixA}

	if !g.seeded {
		g.seed(defaultSeed)
	}

	if g.mti >= n {
		var kk int

		for kk = 0; kk < n-m; kk++ {
			y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
			g.mt[kk] = g.mt[kk+m] ^ (y >> 1) ^ mag01[y&0x1]
		}
		for ; kk < n-1; kk++ {
			y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
			g.mt[kk] = g.mt[kk+(m-n)] ^ (y >> 1) ^ mag01[y&0x1]
		}
		y = (g.mt[n-1] & upperMask) | (g.mt[0] & lowerMask)
		g.mt[n-1] = g.mt[m-1] ^ (y >> 1) ^ mag01[y&0x1]

		g.mti = 0
	}

	y = g.mt[g.mti]
	g.mti++

	// Tempering
	y ^= (y >> 11)
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= (y >> 18)

	return y
}
