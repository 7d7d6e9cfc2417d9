package catalog

import "strings"

// Brand keyword table, checked in order. Sub-brand and model-line
// names count: a "Legion" is a Lenovo even when the title never says
// Lenovo. Order matters for titles that mention accessories of another
// brand, so the slice is fixed rather than a map.
var brandKeywords = []struct {
	brand    string
	keywords []string
}{
	{"apple", []string{"apple", "macbook", "mac "}},
	{"lenovo", []string{"lenovo", "thinkpad", "ideapad", "yoga", "legion"}},
	{"asus", []string{"asus", "rog", "zenbook", "vivobook", "tuf"}},
	{"dell", []string{"dell", "alienware", "xps", "inspiron", "latitude"}},
	{"hp", []string{"hp ", "hewlett", "omen", "pavilion", "elitebook", "victus", "omnibook"}},
	{"msi", []string{"msi ", "msi-", "msi_"}},
	{"acer", []string{"acer", "predator", "aspire", "nitro"}},
	{"microsoft", []string{"microsoft", "surface"}},
	{"huawei", []string{"huawei", "matebook"}},
	{"samsung", []string{"samsung", "galaxy book"}},
	{"monster", []string{"monster", "tulpar", "abra"}},
	{"casper", []string{"casper", "excalibur", "nirvana"}},
}

// BrandOther is the bucket for listings whose brand was not
// recognized.
const BrandOther = "other"

// ExtractBrand detects the manufacturer from a product title.
func ExtractBrand(name string) string {
	if name == "" {
		return BrandOther
	}
	lower := strings.ToLower(name)
	for _, entry := range brandKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.brand
			}
		}
	}
	return BrandOther
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// DetectOS resolves the operating system with descending confidence:
// the OS column, then the title, then the brand. Apple without any OS
// text still means macOS; everything else defaults to FreeDOS.
func DetectOS(osColumn, title, brand string) OSHint {
	if col := strings.ToLower(strings.TrimSpace(osColumn)); col != "" {
		switch {
		case containsAny(col, "windows", "win11", "win10", "w11", "w10"):
			return OSWindows
		case containsAny(col, "mac", "macos", "os x"):
			return OSMacOS
		case containsAny(col, "ubuntu", "linux", "debian"):
			return OSLinux
		case containsAny(col, "dos", "free", "yok", "none"):
			return OSFreeDOS
		}
	}

	if name := strings.ToLower(title); name != "" {
		switch {
		case containsAny(name, "windows 11", "win11", "w11", "/w11", "windows 10", "win10"):
			return OSWindows
		case containsAny(name, "macbook", "mac "):
			return OSMacOS
		case containsAny(name, "freedos", "free dos", "fdos", "dos", "/dos"):
			return OSFreeDOS
		}
	}

	if brand == "apple" {
		return OSMacOS
	}
	return OSFreeDOS
}
