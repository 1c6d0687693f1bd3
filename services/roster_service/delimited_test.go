package roster_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_SniffComma_Ok(t *testing.T) {
	assert.Equal(t, ';', sniffComma("date;name"))
	assert.Equal(t, '\t', sniffComma("date\tname"))
	assert.Equal(t, ',', sniffComma("date,name"))
	assert.Equal(t, ',', sniffComma("date"))
}

func TestUnit_ParseDelimited_Comma_Ok(t *testing.T) {
	in := "date,name\n2024-02-01,Alice\n2024-02-01,Bob\n"

	records, err := parseDelimited([]byte(in), testNow)
	require.NoError(t, err)
	require.Len(t, records, 2)

	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Record{Date: want, Name: "Alice"}, records[0])
	assert.Equal(t, Record{Date: want, Name: "Bob"}, records[1])
}

func TestUnit_ParseDelimited_Semicolon_Ok(t *testing.T) {
	in := "Дата;Дежурный\n01.02.2024;Alice\nmusor;Bob\n02.02.2024;Carol\n"

	records, err := parseDelimited([]byte(in), testNow)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].Name)
	assert.Equal(t, "Carol", records[1].Name)
}

func TestUnit_ParseDelimited_BOMAndTabs_Ok(t *testing.T) {
	in := "\xEF\xBB\xBFdate\tname\n2024-02-01\tAlice\n"

	records, err := parseDelimited([]byte(in), testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Name)
}

func TestUnit_ParseDelimited_NothingRecognized_Empty(t *testing.T) {
	in := "date,name\nnot-a-date,Alice\n"

	records, err := parseDelimited([]byte(in), testNow)
	require.NoError(t, err)
	assert.Empty(t, records)
}
