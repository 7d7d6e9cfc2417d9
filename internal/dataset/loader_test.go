package dataset

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaganyildiz/laprop/internal/logging"
)

func testLoader() *Loader {
	return NewLoader(logging.NewWithWriters(io.Discard, io.Discard, false))
}

func writeCSV(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadFileCommaDelimited(t *testing.T) {
	path := writeCSV(t, "amazon_laptops.csv", []byte(
		"\uFEFFname,price,ram,storage,screen_size,os,url\n"+
			"Lenovo ThinkPad E14,42000,16 GB,512 GB,14,Windows 11,https://example.com/e14\n"+
			"Asus Vivobook 15,35000,8 GB,256 GB,15.6,FreeDOS,https://example.com/vivo\n"))

	rows, err := testLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Lenovo ThinkPad E14", rows[0].Name)
	assert.Equal(t, "42000", rows[0].Price)
	assert.Equal(t, "16 GB", rows[0].RAM)
	assert.Equal(t, "512 GB", rows[0].Storage)
	assert.Equal(t, "14", rows[0].ScreenSize)
	assert.Equal(t, "Windows 11", rows[0].OS)
	assert.Equal(t, "https://example.com/e14", rows[0].URL)
	assert.Equal(t, "amazon", rows[0].Source)
}

func TestLoadFileSemicolonDelimited(t *testing.T) {
	path := writeCSV(t, "vatan_laptops.csv", []byte(
		"name;price;ram\n"+
			"Monster Abra A5;38.999;16 GB\n"))

	rows, err := testLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Monster Abra A5", rows[0].Name)
	assert.Equal(t, "38.999", rows[0].Price)
	assert.Equal(t, "vatan", rows[0].Source)
}

func TestLoadFileSkipsMalformedRows(t *testing.T) {
	path := writeCSV(t, "incehesap_laptops.csv", []byte(
		"name,price,ram\n"+
			"Good Laptop,30000,8 GB\n"+
			"Short Row,25000\n"+
			"Another Good,31000,16 GB\n"))

	rows, err := testLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Good Laptop", rows[0].Name)
	assert.Equal(t, "Another Good", rows[1].Name)
}

func TestLoadFileRequiresNameAndPrice(t *testing.T) {
	path := writeCSV(t, "broken.csv", []byte("title_only\nsomething\n"))

	_, err := testLoader().LoadFile(path)
	assert.ErrorContains(t, err, "no name column")

	path = writeCSV(t, "noprice.csv", []byte("name,ram\nsomething,8 GB\n"))
	_, err = testLoader().LoadFile(path)
	assert.ErrorContains(t, err, "no price column")
}

func TestLoadFileDuplicateURLColumn(t *testing.T) {
	path := writeCSV(t, "vatan_laptops.csv", []byte(
		"name,price,url,\uFEFFurl\n"+
			"Laptop A,30000,,https://example.com/bom\n"+
			"Laptop B,31000,https://example.com/clean,https://example.com/ignored\n"))

	rows, err := testLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "https://example.com/bom", rows[0].URL)
	assert.Equal(t, "https://example.com/clean", rows[1].URL)
}

func TestLoadFileLegacyEncoding(t *testing.T) {
	// 0xFC is not valid UTF-8 on its own; Windows-1254 reads it as ü.
	path := writeCSV(t, "vatan_laptops.csv", []byte("name,price\nDiz\xfcst\xfc Laptop,30000\n"))

	rows, err := testLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Dizüstü Laptop", rows[0].Name)
}

func TestLoadAllSkipsMissingFiles(t *testing.T) {
	good := writeCSV(t, "amazon_laptops.csv", []byte("name,price\nLaptop,30000\n"))
	missing := filepath.Join(t.TempDir(), "vatan_laptops.csv")

	rows, err := testLoader().LoadAll([]string{good, missing})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLoadAllFailsWhenNothingLoads(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nothing.csv")

	_, err := testLoader().LoadAll([]string{missing})
	assert.Error(t, err)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "amazon", sourceName("/data/amazon_laptops.csv"))
	assert.Equal(t, "vatan", sourceName("vatan_laptops.csv"))
	assert.Equal(t, "catalog", sourceName("catalog.csv"))
}
