package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	table := Table{
		Name:    "top-selling",
		Headers: []string{"product_id", "name", "total_quantity"},
		Rows: [][]interface{}{
			{uint64(1), "Widget", int64(12)},
			{uint64(2), nil, int64(3)},
		},
	}

	f, err := XLSX(table)
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows("top-selling")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"product_id", "name", "total_quantity"}, rows[0])
	assert.Equal(t, []string{"1", "Widget", "12"}, rows[1])
	assert.Equal(t, []string{"2", "", "3"}, rows[2])
	assert.Equal(t, "top-selling.xlsx", table.Filename())
}

func TestXLSX_EmptyTable(t *testing.T) {
	f, err := XLSX(Table{Headers: []string{"rack_id"}})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"rack_id"}}, rows)
}
