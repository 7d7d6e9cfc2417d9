package catalog

import "testing"

func TestExtractBrand(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Apple MacBook Air M2", "apple"},
		{"Lenovo IdeaPad 3", "lenovo"},
		{"Legion 5 Pro RTX 4060", "lenovo"},
		{"ROG Strix G16", "asus"},
		{"Alienware m16 R2", "dell"},
		{"HP Victus 15", "hp"},
		{"OMEN Transcend 14", "hp"},
		{"MSI Katana 15", "msi"},
		{"Predator Helios Neo 16", "acer"},
		{"Surface Laptop 5", "microsoft"},
		{"Huawei MateBook D16", "huawei"},
		{"Galaxy Book4 Pro", "samsung"},
		{"Monster Abra A5", "monster"},
		{"Casper Excalibur G770", "casper"},
		{"Generic Laptop 15.6", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		if got := ExtractBrand(tt.title); got != tt.want {
			t.Errorf("ExtractBrand(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDetectOS(t *testing.T) {
	tests := []struct {
		name   string
		column string
		title  string
		brand  string
		want   OSHint
	}{
		{"column windows", "Windows 11 Home", "some laptop", "hp", OSWindows},
		{"column short form", "W11", "some laptop", "hp", OSWindows},
		{"column macos", "macOS Sonoma", "MacBook Air", "apple", OSMacOS},
		{"column linux", "Ubuntu 22.04", "Dev laptop", "dell", OSLinux},
		{"column freedos", "Yok", "some laptop", "casper", OSFreeDOS},
		{"title windows", "", "HP Victus Win11 16GB", "hp", OSWindows},
		{"title macbook", "", "MacBook Pro M3", "apple", OSMacOS},
		{"title freedos", "", "Monster Abra FreeDOS 16GB", "monster", OSFreeDOS},
		{"apple brand fallback", "", "M2 laptop 13 inch", "apple", OSMacOS},
		{"default freedos", "", "Unlabeled laptop", "other", OSFreeDOS},
		{"column beats title", "Ubuntu", "HP Win11 laptop", "hp", OSLinux},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectOS(tt.column, tt.title, tt.brand); got != tt.want {
				t.Errorf("DetectOS(%q, %q, %q) = %v, want %v", tt.column, tt.title, tt.brand, got, tt.want)
			}
		})
	}
}

func TestOSHintRoundTrip(t *testing.T) {
	for _, hint := range []OSHint{OSWindows, OSMacOS, OSLinux, OSFreeDOS} {
		parsed, err := ParseOSHint(hint.String())
		if err != nil {
			t.Fatalf("ParseOSHint(%q): %v", hint.String(), err)
		}
		if parsed != hint {
			t.Errorf("round trip %v != %v", parsed, hint)
		}
	}
	if _, err := ParseOSHint("templeos"); err == nil {
		t.Error("ParseOSHint accepted unknown value")
	}
}
