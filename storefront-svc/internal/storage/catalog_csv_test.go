package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	input := "\xEF\xBB\xBFName,Category,Description,Price (INR)\n" +
		"Paracetamol,Analgesic,Fever and pain relief,30.50\n" +
		"\"Cough Syrup\",Respiratory,\"Dry cough, throat relief\",90\n" +
		"Broken,Misc,No price,n/a\n" +
		",Misc,,12\n"

	products, err := ParseCatalog(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Paracetamol", products[0].Name)
	assert.Equal(t, "30.5", products[0].Price.String())
	assert.Equal(t, "Dry cough, throat relief", products[1].Description)
	assert.Equal(t, "", products[2].Name)
	assert.Equal(t, "12", products[2].Price.String())
}

func TestParseCatalog_MissingColumn(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("Name,Price (INR)\nA,1\n"))
	assert.ErrorContains(t, err, "Description")
}

func TestParseCatalog_Empty(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
