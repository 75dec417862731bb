package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantHeaders []string
		wantRows    []Row
		wantSkipped int
	}{
		{
			name:        "header and rows",
			input:       "name,department,hours_worked,rate\nAlice,Design,40,20\nBob,Design,30,25\n",
			wantHeaders: []string{"name", "department", "hours_worked", "rate"},
			wantRows: []Row{
				{Line: 2, Fields: map[string]string{"name": "Alice", "department": "Design", "hours_worked": "40", "rate": "20"}},
				{Line: 3, Fields: map[string]string{"name": "Bob", "department": "Design", "hours_worked": "30", "rate": "25"}},
			},
		},
		{
			name:        "whitespace trimmed around headers and values",
			input:       "  name , rate \n  Alice ,  20  \n",
			wantHeaders: []string{"name", "rate"},
			wantRows: []Row{
				{Line: 2, Fields: map[string]string{"name": "Alice", "rate": "20"}},
			},
		},
		{
			name:        "blank lines dropped before header detection",
			input:       "\n\n   \nname,rate\n\nAlice,20\n\n",
			wantHeaders: []string{"name", "rate"},
			wantRows: []Row{
				{Line: 2, Fields: map[string]string{"name": "Alice", "rate": "20"}},
			},
		},
		{
			name:        "mismatched rows skipped",
			input:       "name,rate\nAlice\nBob,1,2\nCarol,3\n",
			wantHeaders: []string{"name", "rate"},
			wantRows: []Row{
				{Line: 4, Fields: map[string]string{"name": "Carol", "rate": "3"}},
			},
			wantSkipped: 2,
		},
		{
			name:        "CRLF and CR line endings",
			input:       "name,rate\r\nAlice,1\rBob,2\r\n",
			wantHeaders: []string{"name", "rate"},
			wantRows: []Row{
				{Line: 2, Fields: map[string]string{"name": "Alice", "rate": "1"}},
				{Line: 3, Fields: map[string]string{"name": "Bob", "rate": "2"}},
			},
		},
		{
			name:        "no quoting support",
			input:       "name,rate\n\"Doe, Jane\",5\n",
			wantHeaders: []string{"name", "rate"},
			wantSkipped: 1,
		},
		{
			name:        "duplicate header keeps last value",
			input:       "name,rate,rate\nAlice,1,2\n",
			wantHeaders: []string{"name", "rate", "rate"},
			wantRows: []Row{
				{Line: 2, Fields: map[string]string{"name": "Alice", "rate": "2"}},
			},
		},
		{
			name:        "header only",
			input:       "name,rate\n",
			wantHeaders: []string{"name", "rate"},
		},
		{
			name:  "empty file",
			input: "",
		},
		{
			name:  "only blank lines",
			input: "\n  \n\t\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Parse([]byte(tc.input))
			require.NoError(t, err)

			if diff := cmp.Diff(tc.wantHeaders, table.Headers); diff != "" {
				t.Errorf("headers mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantRows, table.Rows); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantSkipped, table.Skipped)
		})
	}
}

func TestParse_StripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,rate\nAlice,1\n")...)

	table, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "utf-8-bom", table.Encoding)
	assert.Equal(t, []string{"name", "rate"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Alice", table.Rows[0].Fields["name"])
}
