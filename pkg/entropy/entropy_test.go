package entropy

import (
	"bytes"
	"errors"
	"testing"
)

func TestSystem_Bytes(t *testing.T) {
	src := NewSystem()

	b, err := src.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	// 日時の文字列26文字と数値4項目(各8バイト)は最低限含まれる
	if len(b) < 26+8*4 {
		t.Errorf("エントロピー列が短すぎる: len=%d", len(b))
	}
}

func TestSystem_BytesChanges(t *testing.T) {
	// タイマーが進むため、連続する収集結果は同一にならない
	src := NewSystem()

	b1, err := src.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	b2, err := src.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Error("連続する収集結果が同一")
	}
}

func TestSystem_InvalidVolume(t *testing.T) {
	src := &System{VolumePath: "/存在しないボリューム"}

	_, err := src.Bytes()
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("got=%v, want=ErrUnavailable", err)
	}

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("SourceErrorではない: %T", err)
	}
	if srcErr.Path != "/存在しないボリューム" {
		t.Errorf("Path: got=%q", srcErr.Path)
	}
	if srcErr.Unwrap() == nil {
		t.Error("元のエラーが保持されていない")
	}
}

func TestPortable_Bytes(t *testing.T) {
	src := NewPortable()

	b1, err := src.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(b1) < 8*3 {
		t.Errorf("エントロピー列が短すぎる: len=%d", len(b1))
	}

	// カウンタが進むため、連続する収集結果は同一にならない
	b2, err := src.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Error("連続する収集結果が同一")
	}
}

func TestSourceError_Error(t *testing.T) {
	cause := errors.New("boom")

	e := NewSourceError("読み取り", "/data", cause)
	if got := e.Error(); got != "読み取り /data: boom" {
		t.Errorf("Error(): got=%q", got)
	}

	e = NewSourceError("読み取り", "", cause)
	if got := e.Error(); got != "読み取り: boom" {
		t.Errorf("Error(): got=%q", got)
	}

	if !errors.Is(e, ErrUnavailable) {
		t.Error("ErrUnavailableと一致しない")
	}
	if !errors.Is(e, cause) {
		t.Error("元のエラーと一致しない")
	}
}
