package recommend

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/logging"
)

func testFilter() *Filter {
	return NewFilter(&config.Default().Tables, logging.NewWithWriters(io.Discard, io.Discard, false))
}

func names(cands []*catalog.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Name
	}
	return out
}

func TestGamingFilterStrict(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsageGaming}

	cands := []*catalog.Candidate{
		candSpec{name: "Asus TUF", brand: "asus", ram: 16, gpuS: 7.0}.build(),
		candSpec{name: "HP Victus", brand: "hp", ram: 16, gpuS: 5.0}.build(),
		candSpec{name: "Acer Nitro", brand: "acer", ram: 4, gpuS: 8.0}.build(),
		candSpec{name: "Apple MacBook Pro", brand: "apple", ram: 16, gpuS: 8.0}.build(),
	}

	got, relaxed := f.Apply(cands, prefs, 6.0)
	assert.False(t, relaxed)
	assert.Equal(t, []string{"Asus TUF"}, names(got))
}

func TestGamingFilterRelaxes(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsageGaming}

	scores := []float64{5.5, 5.2, 5.0, 4.0, 3.0, 5.1}
	cands := make([]*catalog.Candidate, len(scores))
	for i, gs := range scores {
		cands[i] = candSpec{name: fmt.Sprintf("Laptop %d", i), brand: "asus", ram: 16, gpuS: gs}.build()
	}

	got, relaxed := f.Apply(cands, prefs, 6.0)
	assert.True(t, relaxed)
	assert.Len(t, got, 4)
	for _, c := range got {
		assert.GreaterOrEqual(t, c.GPUScore, 5.0)
	}
}

func TestPortabilityFilterStrict(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsagePortability}

	screens := []float64{13.0, 13.3, 14.0, 14.2, 14.4, 17.0}
	cands := make([]*catalog.Candidate, len(screens))
	for i, sc := range screens {
		cands[i] = candSpec{name: fmt.Sprintf("Laptop %d", i), screen: sc, gpuS: 3.0}.build()
	}

	got, relaxed := f.Apply(cands, prefs, 0)
	assert.False(t, relaxed)
	assert.Len(t, got, 5)
}

func TestPortabilityFilterRelaxes(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsagePortability}

	screens := []float64{13.3, 14.0, 14.5, 15.6, 16.0, 17.3}
	cands := make([]*catalog.Candidate, len(screens))
	for i, sc := range screens {
		cands[i] = candSpec{name: fmt.Sprintf("Laptop %d", i), screen: sc, gpuS: 3.0}.build()
	}

	got, relaxed := f.Apply(cands, prefs, 0)
	assert.True(t, relaxed)
	assert.Len(t, got, 4)
	for _, c := range got {
		assert.LessOrEqual(t, *c.ScreenIn, 15.6)
	}
}

func TestPortabilityFilterShedsHeavyGPUs(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsagePortability}

	var cands []*catalog.Candidate
	for i := 0; i < 28; i++ {
		cands = append(cands, candSpec{name: fmt.Sprintf("Light %d", i), screen: 14.0, gpuS: 3.0}.build())
	}
	for i := 0; i < 3; i++ {
		cands = append(cands, candSpec{name: fmt.Sprintf("Heavy %d", i), screen: 14.0, gpuS: 6.5}.build())
	}

	got, relaxed := f.Apply(cands, prefs, 0)
	assert.False(t, relaxed)
	assert.Len(t, got, 28)
	for _, c := range got {
		assert.LessOrEqual(t, c.GPUScore, 6.0)
	}
}

func TestProductivityFilter(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsageProductivity}

	ok := candSpec{name: "Lenovo V15", ram: 8, cpuS: 5.0}.build()
	slowCPU := candSpec{name: "Budget", ram: 16, cpuS: 4.5}.build()
	lowRAM := candSpec{name: "Thin", ram: 4, cpuS: 7.0}.build()
	// Unknown RAM gets the neutral assumption and passes.
	unknown := candSpec{name: "Mystery", cpuS: 6.0}.build()

	got, relaxed := f.Apply([]*catalog.Candidate{ok, slowCPU, lowRAM, unknown}, prefs, 0)
	assert.False(t, relaxed)
	assert.Equal(t, []string{"Lenovo V15", "Mystery"}, names(got))
}

func TestDesignFilterHints(t *testing.T) {
	f := testFilter()

	mid := candSpec{name: "Mid GPU", ram: 16, screen: 15.6, gpuS: 4.5}.build()
	low := candSpec{name: "Low GPU", ram: 16, screen: 15.6, gpuS: 4.0}.build()
	bigRAM := candSpec{name: "Big RAM", ram: 32, screen: 15.6, gpuS: 7.0}.build()
	cands := []*catalog.Candidate{mid, low, bigRAM}

	got, _ := f.Apply(cands, &Preferences{Usage: UsageDesign}, 0)
	assert.Equal(t, []string{"Mid GPU", "Low GPU", "Big RAM"}, names(got))

	got, _ = f.Apply(cands, &Preferences{Usage: UsageDesign, DesignGPUHint: "high"}, 0)
	assert.Equal(t, []string{"Big RAM"}, names(got))

	got, _ = f.Apply(cands, &Preferences{Usage: UsageDesign, DesignMinRAMGB: 32}, 0)
	assert.Equal(t, []string{"Big RAM"}, names(got))
}

func TestDevWebPreExclusions(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsageDev, DevMode: DevWeb}

	kept := candSpec{
		name: "Lenovo Yoga", ram: 16, ssd: 512, screen: 14.0,
		cpu: "i7-1355u", gpu: "Integrated (generic)", cpuS: 7.5, gpuS: 2.5,
		os: catalog.OSWindows,
	}.build()
	heavyRTX := candSpec{
		name: "Asus ROG", ram: 32, ssd: 1024, screen: 15.6,
		cpu: "i7-13700", gpu: "RTX 4060", cpuS: 8.0, gpuS: 8.0,
		os: catalog.OSWindows,
	}.build()
	hxChip := candSpec{
		name: "MSI Raider", ram: 32, ssd: 1024, screen: 15.6,
		cpu: "i9-13900hx", gpu: "Integrated (generic)", cpuS: 9.5, gpuS: 3.0,
		os: catalog.OSWindows,
	}.build()
	bigDGPU := candSpec{
		name: "HP Omen 16", ram: 16, ssd: 512, screen: 16.0,
		cpu: "i7-13700", gpu: "RTX 3050", cpuS: 8.0, gpuS: 6.8,
		os: catalog.OSWindows,
	}.build()
	freedosDGPU := candSpec{
		name: "Casper Excalibur", ram: 16, ssd: 512, screen: 15.6,
		cpu: "i5-12450", gpu: "GTX 1650", cpuS: 6.0, gpuS: 5.0,
		os: catalog.OSFreeDOS,
	}.build()

	got, relaxed := f.Apply([]*catalog.Candidate{kept, heavyRTX, hxChip, bigDGPU, freedosDGPU}, prefs, 0)
	assert.False(t, relaxed)
	assert.Equal(t, []string{"Lenovo Yoga"}, names(got))
}

func TestDevMLPresetRequirements(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsageDev, DevMode: DevML}

	good := candSpec{
		name: "Lenovo Legion", ram: 32, ssd: 1024, screen: 16.0,
		cpu: "i7-13700h", gpu: "RTX 4060", cpuS: 8.0, gpuS: 8.0,
		os: catalog.OSWindows,
	}.build()
	noCUDA := candSpec{
		name: "Asus TUF AMD", ram: 32, ssd: 1024, screen: 16.0,
		cpu: "ryzen 7 7840hs", gpu: "Radeon RX 6600M", cpuS: 8.0, gpuS: 6.6,
		os: catalog.OSWindows,
	}.build()
	lowRAM := candSpec{
		name: "Slim", ram: 16, ssd: 1024, screen: 15.6,
		cpu: "i7-13700h", gpu: "RTX 4060", cpuS: 8.0, gpuS: 8.0,
		os: catalog.OSWindows,
	}.build()

	got, relaxed := f.Apply([]*catalog.Candidate{good, noCUDA, lowRAM}, prefs, 0)
	assert.False(t, relaxed)
	require.Len(t, got, 1)
	assert.Equal(t, "Lenovo Legion", got[0].Name)
}

func TestDevFilterRelaxesOnRAM(t *testing.T) {
	f := testFilter()
	prefs := &Preferences{Usage: UsageDev, DevMode: DevGeneral}

	cands := make([]*catalog.Candidate, 6)
	for i := range cands {
		cands[i] = candSpec{
			name: fmt.Sprintf("Laptop %d", i), ram: 12, ssd: 512, screen: 14.0,
			cpu: "i5-1235u", gpu: "Integrated (generic)", cpuS: 5.0, gpuS: 3.0,
			os: catalog.OSWindows,
		}.build()
	}

	got, relaxed := f.Apply(cands, prefs, 0)
	assert.True(t, relaxed)
	assert.Len(t, got, 6)
}
