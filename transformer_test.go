package vntone

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
)

func TestTransformerAgreesWithString(t *testing.T) {
	inputs := []string{
		"",
		"Tiếng Việt",
		"Không có gì quý hơn độc lập, tự do.",
		"Ý Ã Ì Ò Õ Ĩ Ũ ỹ Ỵ",
		"bad \xff\xfe utf-8 ạ",
	}
	for _, orthographic := range []bool{false, true} {
		for _, input := range inputs {
			got, _, err := transform.String(NewTransformer(orthographic), input)
			if err != nil {
				t.Fatalf("transform %q: %v", input, err)
			}
			if want := String(input, orthographic); got != want {
				t.Fatalf("orthographic=%v: transformer gives %+q, String gives %+q", orthographic, got, want)
			}
		}
	}
}

func TestTransformerShortDst(t *testing.T) {
	tr := NewTransformer(false)
	src := []byte("\u1ea5") // 3 bytes, expands to 4
	dst := make([]byte, 3)
	nDst, nSrc, err := tr.Transform(dst, src, true)
	if err != transform.ErrShortDst || nDst != 0 || nSrc != 0 {
		t.Fatalf("expected ErrShortDst without progress, got %d, %d, %v", nDst, nSrc, err)
	}
	dst = make([]byte, 4)
	nDst, nSrc, err = tr.Transform(dst, src, true)
	if err != nil || nDst != 4 || nSrc != 3 {
		t.Fatalf("expected full transform, got %d, %d, %v", nDst, nSrc, err)
	}
	if string(dst) != "\u00e2\u0301" {
		t.Fatalf("unexpected output %+q", string(dst))
	}
}

func TestTransformerShortSrc(t *testing.T) {
	tr := NewTransformer(true)
	partial := []byte("a\u1ea5")[:3] // 'a' plus 2 of 3 bytes
	dst := make([]byte, 16)
	nDst, nSrc, err := tr.Transform(dst, partial, false)
	if err != transform.ErrShortSrc || nDst != 1 || nSrc != 1 {
		t.Fatalf("expected ErrShortSrc after 'a', got %d, %d, %v", nDst, nSrc, err)
	}
	// at EOF the incomplete sequence is copied as is
	nDst, nSrc, err = tr.Transform(dst, partial, true)
	if err != nil || nSrc != 3 || !bytes.Equal(dst[:nDst], partial) {
		t.Fatalf("expected verbatim copy at EOF, got %q, %d, %v", dst[:nDst], nSrc, err)
	}
}

func TestTransformerReader(t *testing.T) {
	input := strings.Repeat("Đường đi khó không khó vì ngăn sông cách núi. ", 200)
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(input)), NewTransformer(true))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != String(input, true) {
		t.Fatalf("streaming transform differs from String")
	}
}

func TestNFCTransformer(t *testing.T) {
	tests := []struct {
		input        string
		orthographic bool
		want         string
	}{
		{input: "a\u0301", orthographic: false, want: "\u00e1"},
		{input: "a\u0301", orthographic: true, want: "a\u0301"},
		{input: "y\u0301", orthographic: false, want: "y\u0301"},
		{input: "e\u0323\u0302", orthographic: false, want: "\u00ea\u0323"},
		{input: "\u1ec7", orthographic: false, want: "\u00ea\u0323"},
	}
	for _, tt := range tests {
		got, _, err := transform.String(NewNFCTransformer(tt.orthographic), tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("NFC transform of %+q = %+q, want %+q", tt.input, got, tt.want)
		}
	}
}
