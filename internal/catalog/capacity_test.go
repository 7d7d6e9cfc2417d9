package catalog

import "testing"

func TestStorageFromTitle(t *testing.T) {
	e := NewExtractor(DefaultExtractorParams())

	tests := []struct {
		name  string
		title string
		want  int // 0 means no storage expected
	}{
		{
			name:  "marketing 500 canonicalized to 512",
			title: "Lenovo IdeaPad 3 i5-1235U 16GB RAM 500GB SSD",
			want:  512,
		},
		{
			name:  "marketing 1TB canonicalized to 1024",
			title: "ASUS TUF Gaming F15 i7-12700H 16GB 1TB SSD RTX 4060",
			want:  1024,
		},
		{
			name:  "2TB NVMe without GB unit",
			title: "Monster Tulpar T7 32GB DDR5 2TB NVMe",
			want:  2048,
		},
		{
			name:  "no unit common size with anchor",
			title: "HP Victus 16GB RAM 512 SSD",
			want:  512,
		},
		{
			name:  "ram only title yields nothing",
			title: "Acer Aspire 3 8GB RAM",
			want:  0,
		},
		{
			name:  "vram near capacity is not storage",
			title: "MSI Katana 8GB GDDR6 RTX 4060 laptop",
			want:  0,
		},
		{
			name:  "form factor designation rejected",
			title: "Kingston 2280 NVMe upgrade kit for laptops",
			want:  0,
		},
		{
			name:  "ssd wins over ram in mixed title",
			title: "Lenovo LOQ 16GB DDR5 RAM 1TB SSD NVMe 15.6 FHD",
			want:  1024,
		},
		{
			name:  "tie breaks to larger capacity",
			title: "Dell Inspiron 512GB SSD + 1TB SSD",
			want:  1024,
		},
		{
			name:  "empty title",
			title: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.StorageFromTitle(tt.title)
			if tt.want == 0 {
				if got != nil {
					t.Fatalf("StorageFromTitle(%q) = %d, want nil", tt.title, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("StorageFromTitle(%q) = nil, want %d", tt.title, tt.want)
			}
			if *got != tt.want {
				t.Errorf("StorageFromTitle(%q) = %d, want %d", tt.title, *got, tt.want)
			}
		})
	}
}

func TestRAMFromTitle(t *testing.T) {
	e := NewExtractor(DefaultExtractorParams())

	tests := []struct {
		name  string
		title string
		want  int
	}{
		{"plain gb ram", "HP Pavilion 16GB RAM 512GB SSD", 16},
		{"ddr spelling", "Monster Abra 32GB DDR5 1TB", 32},
		{"ram before size", "Casper Excalibur RAM 16 GB", 16},
		{"sum notation picks total", "Lenovo V15 8GB + 8GB = 16GB RAM", 16},
		{"multiple values picks max", "ASUS Vivobook 8GB RAM upgrade 24GB DDR4", 24},
		{"over limit rejected", "Workstation 256GB DDR5 ECC RAM", 0},
		{"no ram mention", "Apple MacBook Air M2 256GB", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.RAMFromTitle(tt.title)
			if tt.want == 0 {
				if got != nil {
					t.Fatalf("RAMFromTitle(%q) = %d, want nil", tt.title, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("RAMFromTitle(%q) = %v, want %d", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitizeRAMGB(t *testing.T) {
	e := NewExtractor(DefaultExtractorParams())

	tests := []struct {
		name  string
		title string
		want  int
	}{
		{"normal value kept", "Lenovo ThinkPad X1 32GB LPDDR5 i7-1355U", 32},
		{"vram context skipped falls back", "MSI 8GB GDDR6 RTX 4060", 64},
		{"invalid size skipped", "Custom build 96GB RAM", 64},
		{"empty title", "", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.SanitizeRAMGB(tt.title); got != tt.want {
				t.Errorf("SanitizeRAMGB(%q) = %d, want %d", tt.title, got, tt.want)
			}
		})
	}
}

func TestCleanColumnRAM(t *testing.T) {
	e := NewExtractor(DefaultExtractorParams())

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain", "16 GB", 16},
		{"parenthesized wins", "DDR4 (8 GB)", 8},
		{"max of several", "8GB + 16GB", 16},
		{"bare valid number", "32", 32},
		{"bare implausible number", "3200", 0},
		{"no digits", "DDR5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.CleanColumnRAM(tt.raw)
			if tt.want == 0 {
				if got != nil {
					t.Fatalf("CleanColumnRAM(%q) = %d, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("CleanColumnRAM(%q) = %v, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanColumnStorage(t *testing.T) {
	e := NewExtractor(DefaultExtractorParams())

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare number canonicalized", "1000", 1024},
		{"bare 500", "500", 512},
		{"text with unit", "512 GB SSD", 512},
		{"form factor rejected", "2280", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.CleanColumnStorage(tt.raw)
			if tt.want == 0 {
				if got != nil {
					t.Fatalf("CleanColumnStorage(%q) = %d, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("CleanColumnStorage(%q) = %v, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCapacityGB(t *testing.T) {
	tests := []struct{ in, want int }{
		{500, 512},
		{1000, 1024},
		{2000, 2048},
		{512, 512},
		{256, 256},
	}
	for _, tt := range tests {
		if got := normalizeCapacityGB(tt.in); got != tt.want {
			t.Errorf("normalizeCapacityGB(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
