package excel

import (
	"os"
	"path/filepath"
	"testing"

	"dsconf/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, IsSpreadsheet("data.xlsx"))
	assert.True(t, IsSpreadsheet("DATA.XLSM"))
	assert.True(t, IsSpreadsheet("runs.csv"))
	assert.False(t, IsSpreadsheet("ds1.txt"))
	assert.False(t, IsSpreadsheet("ds1"))
}

func TestReadDataset_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	content := "run,seconds\n" +
		"r1,10.5\n" +
		"r2,11.0\n" +
		"r3,bad\n" +
		"r4,9.5\n" +
		"r5,10.0\n" +
		"r6,10.2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts := dataset.DefaultLoadOptions()
	opts.Column = 2

	ds, err := NewDataReader(path).ReadDataset(opts, nil)
	require.NoError(t, err)
	assert.Equal(t, path, ds.Source)
	assert.Equal(t, []float64{10.5, 11.0, 9.5, 10.0, 10.2}, ds.Values)
}

func TestReadDataset_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.xlsx")

	f := excelize.NewFile()
	values := []float64{10.5, 11.0, 9.5, 10.0, 10.2}
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "run"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "seconds"))
	for i, v := range values {
		cellA, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		cellB, err := excelize.CoordinatesToCellName(2, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cellA, i+1))
		require.NoError(t, f.SetCellValue("Sheet1", cellB, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	opts := dataset.DefaultLoadOptions()
	opts.Column = 2

	ds, err := NewDataReader(path).ReadDataset(opts, nil)
	require.NoError(t, err)
	assert.Equal(t, values, ds.Values)
}

func TestReadDataset_MissingFile(t *testing.T) {
	opts := dataset.DefaultLoadOptions()
	_, err := NewDataReader("/no/such/file.csv").ReadDataset(opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadDataset_ThresholdApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.0\n2.0\n3.0\n"), 0o644))

	_, err := NewDataReader(path).ReadDataset(dataset.DefaultLoadOptions(), nil)
	require.Error(t, err)
}
