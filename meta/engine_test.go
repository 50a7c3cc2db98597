package meta

import (
	"strings"
	"testing"

	"github.com/coregx/casefold/kernel"
	"github.com/coregx/casefold/serial"
)

func TestStrategySelection(t *testing.T) {
	kernels := kernel.Available()
	tests := []struct {
		needle string
		want   Strategy
	}{
		{"", UseEmpty},
		{"1234-5678", UseByteSearch},
		{"价格：¥12", UseByteSearch},
		{"world", UseKernel},
		{"мир", UseKernel},
		{"ks", UseSerial}, // every letter aliased, no safe window
		{"ﬁ", UseSerial},  // ligature needle
	}
	for _, tt := range tests {
		e := Compile([]byte(tt.needle))
		want := tt.want
		if want == UseKernel && !kernels {
			want = UseSerial
		}
		if e.Strategy() != want {
			t.Errorf("Compile(%q).Strategy() = %v, want %v", tt.needle, e.Strategy(), want)
		}
	}
}

func TestEngineScenarios(t *testing.T) {
	tests := []struct {
		haystack  string
		needle    string
		wantStart int
		wantLen   int
	}{
		{"STRASSE", "straße", 0, 7},
		{"straße", "STRASSE", 0, 7},
		{"HELLO, WORLD.", "world", 7, 5},
		{"ПРИВЕТ, МИР!", "мир", 14, 6},
		{"价格：¥1234", "¥1234", 9, 6},
		{"hello", "", 0, 0},
		{"groß", "SS", 3, 2},
		{"ß", "s", NotFound, 0},
	}
	for _, tt := range tests {
		e := Compile([]byte(tt.needle))
		start, length := e.Find([]byte(tt.haystack))
		if start != tt.wantStart || length != tt.wantLen {
			t.Errorf("Find(%q, %q) [%v] = (%d, %d), want (%d, %d)",
				tt.haystack, tt.needle, e.Strategy(), start, length, tt.wantStart, tt.wantLen)
		}
	}
}

// TestEngineMatchesSerial sweeps every strategy's output against the serial
// engine on shared inputs.
func TestEngineMatchesSerial(t *testing.T) {
	needles := []string{
		"", "x", "abc", "WORLD", "straße", "STRASSE", "мир", "ΛΌΓΟΣ",
		"ﬁle", "k", "s", "1234", "Việt", "métro", "երկիր",
		strings.Repeat("ab", 20),
	}
	haystacks := []string{
		"", "x", "hello world", "HELLO WORLD", "die STRASSE", "straße",
		"ПРИВЕТ, МИР!", "ο λόγος", "file ﬁle", "0 K 1 Å", "12341234",
		"TIẾNG VIỆT", "le métro", "մեր երկիր",
		strings.Repeat("AB", 30) + "abab",
	}
	for _, n := range needles {
		e := Compile([]byte(n))
		for _, h := range haystacks {
			gs, gl := e.Find([]byte(h))
			ws, wl := serial.Find([]byte(h), []byte(n))
			if gs != ws || gl != wl {
				t.Errorf("engine(%q in %q) [%v] = (%d,%d), serial = (%d,%d)",
					n, h, e.Strategy(), gs, gl, ws, wl)
			}
		}
	}
}

func TestEngineFindAll(t *testing.T) {
	e := Compile([]byte("ab"))
	got := e.FindAll([]byte("ab AB aß ab"), -1)
	want := []Match{{0, 2}, {3, 2}, {10, 2}}
	if len(got) != len(want) {
		t.Fatalf("FindAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}

	if got := e.FindAll([]byte("ab ab ab"), 2); len(got) != 2 {
		t.Errorf("limited FindAll returned %d matches, want 2", len(got))
	}

	// Expansion-length matches advance correctly.
	e2 := Compile([]byte("ss"))
	got = e2.FindAll([]byte("ß ss"), -1)
	want = []Match{{0, 2}, {3, 2}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("FindAll(ss) = %v, want %v", got, want)
	}
}

func TestEngineFindAllEmptyNeedle(t *testing.T) {
	e := Compile(nil)
	got := e.FindAll([]byte("aß"), -1)
	// Empty matches at every codepoint boundary: 0, 1 and 3 (the end).
	if len(got) != 3 {
		t.Errorf("FindAll(empty) = %v, want 3 boundary matches", got)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableKernels = false
	e := CompileWithConfig([]byte("world"), cfg)
	if e.Strategy() != UseSerial {
		t.Errorf("kernels disabled but strategy = %v", e.Strategy())
	}
	start, length := e.Find([]byte("HELLO WORLD"))
	if start != 6 || length != 5 {
		t.Errorf("serial-only Find = (%d, %d), want (6, 5)", start, length)
	}
}

func TestEngineIsMatch(t *testing.T) {
	e := Compile([]byte("straße"))
	if !e.IsMatch([]byte("STRASSENBAHN")) {
		t.Error("IsMatch missed STRASSENBAHN")
	}
	if e.IsMatch([]byte("street")) {
		t.Error("IsMatch false positive")
	}
}

func TestEngineConcurrent(t *testing.T) {
	e := Compile([]byte("мир"))
	h := []byte(strings.Repeat("привет ", 50) + "МИР")
	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- true }()
			for i := 0; i < 100; i++ {
				if start, _ := e.Find(h); start == NotFound {
					t.Error("concurrent Find missed")
					return
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
