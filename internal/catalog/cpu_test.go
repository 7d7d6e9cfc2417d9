package catalog

import "testing"

func TestNormalizeCPU(t *testing.T) {
	tests := []struct {
		name  string
		title string
		brand string
		want  string // empty means nil expected
	}{
		{
			name:  "intel with dash",
			title: "Lenovo IdeaPad i5-12450H 16GB 512GB",
			brand: "lenovo",
			want:  "I5-12450H",
		},
		{
			name:  "intel with space",
			title: "HP Pavilion Intel Core i7 13700H",
			brand: "hp",
			want:  "I7-13700H",
		},
		{
			name:  "core ultra with model",
			title: "ASUS Zenbook Core Ultra 7 155H",
			brand: "asus",
			want:  "Ultra 7 155H",
		},
		{
			name:  "core ultra bare",
			title: "MSI Prestige Ultra 5",
			brand: "msi",
			want:  "Ultra 5",
		},
		{
			name:  "ryzen long form",
			title: "Lenovo LOQ Ryzen 7 7735HS",
			brand: "lenovo",
			want:  "Ryzen 7 7735HS",
		},
		{
			name:  "ryzen shorthand",
			title: "HP Victus R5 7535HS 16GB",
			brand: "hp",
			want:  "Ryzen 5 7535HS",
		},
		{
			name:  "shorthand suppressed near radeon",
			title: "Gaming laptop R7 7700 Radeon graphics",
			brand: "other",
			want:  "",
		},
		{
			name:  "apple m with suffix",
			title: "Apple MacBook Pro M3 Pro 18GB",
			brand: "apple",
			want:  "M3 Pro",
		},
		{
			name:  "apple m base",
			title: "Apple MacBook Air M2 256GB",
			brand: "apple",
			want:  "M2",
		},
		{
			name:  "m-series ignored outside apple context",
			title: "Samsung Galaxy Book M3 edition",
			brand: "samsung",
			want:  "",
		},
		{
			name:  "no cpu stays nil",
			title: "Casper Excalibur gaming laptop 16GB",
			brand: "casper",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCPU(tt.title, tt.brand)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("NormalizeCPU(%q) = %q, want nil", tt.title, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NormalizeCPU(%q) = nil, want %q", tt.title, tt.want)
			}
			if *got != tt.want {
				t.Errorf("NormalizeCPU(%q) = %q, want %q", tt.title, *got, tt.want)
			}
		})
	}
}

func TestGPUFromTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		brand string
		want  string
	}{
		{"rtx spaced", "ASUS TUF RTX 4060 8GB", "asus", "RTX 4060"},
		{"rtx compact", "Monster Tulpar RTX4050 144Hz", "monster", "RTX 4050"},
		{"gtx", "Lenovo IdeaPad GTX 1650 4GB", "lenovo", "GTX 1650"},
		{"mx", "ASUS Vivobook MX550 2GB", "asus", "MX 550"},
		{"rx with suffix", "Gaming laptop Radeon RX 6600M", "other", "RX 6600M"},
		{"arc", "Samsung Galaxy Book Arc A370M", "samsung", "Arc A370M"},
		{"iris xe", "Dell XPS 13 Iris Xe Graphics", "dell", "Iris Xe"},
		{"radeon igpu", "HP Laptop Radeon 780M graphics", "hp", "Radeon 780M"},
		{"apple gpu", "Apple MacBook Pro M3 Max", "apple", "Apple M3 Max GPU"},
		{"nothing", "Casper Nirvana i5 16GB", "casper", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GPUFromTitle(tt.title, tt.brand)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("GPUFromTitle(%q) = %q, want nil", tt.title, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("GPUFromTitle(%q) = nil, want %q", tt.title, tt.want)
			}
			if *got != tt.want {
				t.Errorf("GPUFromTitle(%q) = %q, want %q", tt.title, *got, tt.want)
			}
		})
	}
}
