package mtrand

import "math"

// NextInRange は [min, max] の範囲（両端を含む）の乱数を返します。
// min >= max の場合は ErrInvalidRange を返します。
//
// 剰余による縮小を行うため、範囲の大きさが 2^32 を割り切らない場合は
// 小さい値側にわずかな偏りが生じます。この挙動は出力互換性のために
// 意図的に保持しています。偏りのない乱数が必要な場合は
// NextInRangeUnbiased を使ってください。
func (g *Generator) NextInRange(min, max uint32) (uint32, error) {
	if min >= max {
		return 0, ErrInvalidRange
	}
	span := max - min + 1
	if span == 0 {
		// min=0, max=2^32-1 の全範囲。剰余は恒等写像になる。
		return g.Next(), nil
	}
	return g.Next()%span + min, nil
}

// NextInRangeUnbiased は [min, max] の範囲（両端を含む）の乱数を
// 棄却サンプリングで返します。剰余縮小による偏りはありませんが、
// NextInRange とは異なる列になり、1回の呼び出しで複数回乱数を
// 消費することがあります。
func (g *Generator) NextInRangeUnbiased(min, max uint32) (uint32, error) {
	if min >= max {
		return 0, ErrInvalidRange
	}
	span := max - min + 1
	if span == 0 {
		return g.Next(), nil
	}
	// [t, 2^32) の長さは span の倍数になるため、この区間の値のみ採用する
	t := (-span) % span
	for {
		v := g.Next()
		if v >= t {
			return v%span + min, nil
		}
	}
}

// NextIntInRange は NextInRange の符号付きオーバーロードです。
// 境界を符号なし32ビットとして再解釈して乱数を引き、結果を明示的な
// 範囲チェック付きで int32 に納めます。結果が int32 で表現できない
// 場合は ErrOverflow を返します。負の境界は再解釈によって大きな
// 符号なし値になるため、そのまま検証・判定されます（互換性のための挙動）。
func (g *Generator) NextIntInRange(min, max int32) (int32, error) {
	v, err := g.NextInRange(uint32(min), uint32(max))
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(v), nil
}
