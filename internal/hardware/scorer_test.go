package hardware

import (
	"testing"

	"github.com/kaganyildiz/laprop/internal/config"
)

func newTestScorer() *Scorer {
	tables := config.DefaultTables()
	return NewScorer(&tables)
}

func strPtr(s string) *string { return &s }

func TestCPUScore(t *testing.T) {
	sc := newTestScorer()

	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"current gen i9", "I9-14900HX", 10.0}, // 9.5 + 0.5 HX bonus
		{"i5 12th gen", "I5-12450H", 6.0},
		{"u suffix penalized", "i5-1340 u", 5.5}, // 6.5 - 1.0
		{"p suffix penalized", "i5-1340 p", 6.2}, // 6.5 - 0.3
		{"apple pro beats base", "M1 Pro", 8.3},  // must not hit the m1 row
		{"apple base", "M1", 7.8},
		{"apple max", "M4 Max", 9.8},
		{"core ultra", "Ultra 7 155H", 8.0},
		{"ryzen family", "Ryzen 7 7735HS", 8.2},
		{"family fallback i7", "Intel Core i7", 7.5},
		{"family fallback ryzen 5", "Ryzen 5 5500U", 6.0},
		{"unknown cpu", "Snapdragon X Elite", 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sc.CPUScore(strPtr(tt.label)); got != tt.want {
				t.Errorf("CPUScore(%q) = %g, want %g", tt.label, got, tt.want)
			}
		})
	}
}

func TestCPUScoreNil(t *testing.T) {
	sc := newTestScorer()
	if got := sc.CPUScore(nil); got != 5.0 {
		t.Errorf("CPUScore(nil) = %g, want default 5.0", got)
	}
}

func TestCPUScoreOrderIndependence(t *testing.T) {
	// The family table is ordered most specific first; the outcome must
	// not depend on map iteration or input casing.
	sc := newTestScorer()
	for i := 0; i < 50; i++ {
		if got := sc.CPUScore(strPtr("m1 pro")); got != 8.3 {
			t.Fatalf("CPUScore(m1 pro) = %g on iteration %d, want 8.3", got, i)
		}
	}
}

func TestGPUScore(t *testing.T) {
	sc := newTestScorer()

	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"rtx model", "GeForce RTX 4060", 8.0},
		{"rtx compact", "rtx4050", 7.2},
		{"rtx 40 fallback", "GeForce RTX 4045", 8.0},
		{"rtx 30 fallback", "GeForce RTX 3055", 7.0},
		{"gtx model", "GeForce GTX 1650", 5.0},
		{"gtx fallback", "GeForce GTX 980", 4.5},
		{"mx model", "NVIDIA MX 550", 4.0},
		{"rx model", "Radeon RX 6600M", 6.6},
		{"rx prefix fallback", "Radeon RX 7750", 7.7},
		{"arc high", "Intel Arc A770M", 7.5},
		{"arc low", "Intel Arc A370M", 5.5},
		{"igpu high", "Radeon 780M (iGPU)", 3.5},
		{"igpu mid", "Radeon 760M (iGPU)", 3.0},
		{"iris xe", "Intel Iris Xe (iGPU)", 2.5},
		{"apple m3", "Apple M3 GPU", 8.0},
		{"discrete unknown", "Discrete GPU (Unknown)", 4.0},
		{"unlabeled", "GPU (Unlabeled)", 2.0},
		{"empty", "", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sc.GPUScore(tt.label); got != tt.want {
				t.Errorf("GPUScore(%q) = %g, want %g", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalizeGPUModel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"RTX 4060 Laptop GPU", "GeForce RTX 4060"},
		{"rtx-4050", "GeForce RTX 4050"},
		{"GTX 1650 Ti", "GeForce GTX 1650 TI"},
		{"mx550", "NVIDIA MX 550"},
		{"RX 6600M", "Radeon RX 6600M"},
		{"arc a370m", "Intel Arc A370M"},
		{"Apple M2", "Apple M2 GPU"},
		{"Iris Xe Graphics", "Intel Iris Xe (iGPU)"},
		{"UHD Graphics 620", "Intel UHD (iGPU)"},
		{"Radeon 780M", "Radeon 780M (iGPU)"},
		{"Vega 8", "Radeon Vega 8 (iGPU)"},
		{"integrated", "Integrated (generic)"},
		{"", "Integrated (generic)"},
		{"NVIDIA graphics", "Discrete GPU (Unknown)"},
		{"something else", "GPU (Unlabeled)"},
	}

	for _, tt := range tests {
		if got := NormalizeGPUModel(tt.raw); got != tt.want {
			t.Errorf("NormalizeGPUModel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeAndScoreGPU(t *testing.T) {
	sc := newTestScorer()
	norm, score := sc.NormalizeAndScoreGPU("rtx 4070 laptop")
	if norm != "GeForce RTX 4070" {
		t.Errorf("norm = %q, want GeForce RTX 4070", norm)
	}
	if score != 8.8 {
		t.Errorf("score = %g, want 8.8", score)
	}
}

func TestCPUSuffix(t *testing.T) {
	tests := []struct {
		label string
		want  Suffix
	}{
		{"I9-14900HX", SuffixHX},
		{"I5-12450H", SuffixH},
		{"Ryzen 7 7735HS", SuffixH},
		{"i7-1355 u", SuffixU},
		{"i5-1340 p", SuffixP},
		{"Ultra 7 258V", SuffixP},
		{"M3 Pro", SuffixNone},
		{"", SuffixNone},
	}

	for _, tt := range tests {
		if got := CPUSuffix(tt.label); got != tt.want {
			t.Errorf("CPUSuffix(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestGPUHelpers(t *testing.T) {
	if HasDiscreteGPU("Intel Iris Xe (iGPU)") {
		t.Error("iGPU classified as discrete")
	}
	if !HasDiscreteGPU("GeForce RTX 4060") {
		t.Error("RTX 4060 not classified as discrete")
	}
	if !IsNVIDIACUDA("GeForce RTX 4060") {
		t.Error("RTX 4060 not CUDA capable")
	}
	if IsNVIDIACUDA("Radeon RX 6600M") {
		t.Error("Radeon classified as CUDA capable")
	}
	if got := RTXTier("GeForce RTX 4070"); got != 4070 {
		t.Errorf("RTXTier = %d, want 4070", got)
	}
	if got := RTXTier("Radeon RX 6600M"); got != 0 {
		t.Errorf("RTXTier = %d, want 0", got)
	}
	if !IsHeavyDiscrete("GeForce RTX 4060") {
		t.Error("RTX 4060 not heavy")
	}
	if IsHeavyDiscrete("GeForce RTX 4050") {
		t.Error("RTX 4050 marked heavy")
	}
	if !IsHeavyDiscrete("GeForce RTX 5070") {
		t.Error("RTX 5070 not heavy")
	}
}
