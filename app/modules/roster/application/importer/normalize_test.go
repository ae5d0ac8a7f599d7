package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name     string
		row      RawRow
		want     func(t *testing.T, rec *NormalizedRecord)
		rejected bool
	}{
		{
			name: "full row with canonical headers",
			row: RawRow{
				"first_name": "Alex",
				"last_name":  "Kim",
				"team":       "Varsity Volleyball",
				"position":   "Setter",
				"year_group": "11",
				"is_captain": "Y",
				"kit_number": "7",
				"quote":      "  Go team  ",
				"photo":      "alex.jpg",
			},
			want: func(t *testing.T, rec *NormalizedRecord) {
				assert.Equal(t, "Alex", rec.FirstName)
				assert.Equal(t, "Kim", rec.LastName)
				assert.Equal(t, "Varsity Volleyball", rec.TeamName)
				assert.Equal(t, "Setter", rec.Position)
				require.NotNil(t, rec.Year)
				assert.Equal(t, 11, *rec.Year)
				assert.True(t, rec.IsCaptain)
				require.NotNil(t, rec.ShirtNumber)
				assert.Equal(t, 7, *rec.ShirtNumber)
				assert.Equal(t, "Go team", rec.Quote)
				assert.Equal(t, "alex.jpg", rec.PhotoRaw)
			},
		},
		{
			name: "alias headers probed in priority order",
			row: RawRow{
				"First name":   " Jo ",
				"Last name":    "Singh",
				"Team":         "JV Football",
				"shirt_number": "12",
				"captain":      "true",
				"Quote":        "steady",
				"Photo":        "jo.png",
			},
			want: func(t *testing.T, rec *NormalizedRecord) {
				assert.Equal(t, "Jo", rec.FirstName)
				assert.Equal(t, "Singh", rec.LastName)
				assert.Equal(t, "JV Football", rec.TeamName)
				require.NotNil(t, rec.ShirtNumber)
				assert.Equal(t, 12, *rec.ShirtNumber)
				assert.True(t, rec.IsCaptain)
				assert.Equal(t, "steady", rec.Quote)
				assert.Equal(t, "jo.png", rec.PhotoRaw)
			},
		},
		{
			name: "kit_number wins over kit",
			row: RawRow{
				"first_name": "Sam",
				"kit_number": "3",
				"kit":        "99",
			},
			want: func(t *testing.T, rec *NormalizedRecord) {
				require.NotNil(t, rec.ShirtNumber)
				assert.Equal(t, 3, *rec.ShirtNumber)
			},
		},
		{
			name: "missing team defaults to sentinel",
			row:  RawRow{"first_name": "Mina", "last_name": "Osei"},
			want: func(t *testing.T, rec *NormalizedRecord) {
				assert.Equal(t, UnassignedTeam, rec.TeamName)
			},
		},
		{
			name: "non-numeric coercions yield absence",
			row: RawRow{
				"first_name": "Dora",
				"year_group": "eleventh",
				"kit_number": "n/a",
				"is_captain": "nope",
			},
			want: func(t *testing.T, rec *NormalizedRecord) {
				assert.Nil(t, rec.Year)
				assert.Nil(t, rec.ShirtNumber)
				assert.False(t, rec.IsCaptain)
			},
		},
		{
			name: "typed cell values",
			row: RawRow{
				"first_name": "Lee",
				"year_group": float64(10),
				"kit_number": 42,
				"is_captain": true,
			},
			want: func(t *testing.T, rec *NormalizedRecord) {
				require.NotNil(t, rec.Year)
				assert.Equal(t, 10, *rec.Year)
				require.NotNil(t, rec.ShirtNumber)
				assert.Equal(t, 42, *rec.ShirtNumber)
				assert.True(t, rec.IsCaptain)
			},
		},
		{
			name: "fractional number is not a shirt number",
			row:  RawRow{"first_name": "Pat", "kit_number": 7.5},
			want: func(t *testing.T, rec *NormalizedRecord) {
				assert.Nil(t, rec.ShirtNumber)
			},
		},
		{
			name:     "both names empty is rejected",
			row:      RawRow{"first_name": "   ", "last_name": "", "team": "Tennis"},
			rejected: true,
		},
		{
			name:     "both names absent is rejected",
			row:      RawRow{"team": "Tennis"},
			rejected: true,
		},
		{
			name: "one name is enough",
			row:  RawRow{"last_name": "Okafor"},
			want: func(t *testing.T, rec *NormalizedRecord) {
				assert.Equal(t, "", rec.FirstName)
				assert.Equal(t, "Okafor", rec.LastName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, warn := NormalizeRow(tt.row, 1)
			if tt.rejected {
				assert.Nil(t, rec)
				assert.NotEmpty(t, warn)
				return
			}
			require.NotNil(t, rec)
			assert.Empty(t, warn)
			tt.want(t, rec)
		})
	}
}

func TestTruthyTokens(t *testing.T) {
	truthy := []any{"1", "true", "YES", "y", "T", " yes ", true}
	for _, v := range truthy {
		assert.True(t, boolValue(v), "%v should be truthy", v)
	}
	falsy := []any{"0", "false", "no", "", nil, "2", "on"}
	for _, v := range falsy {
		assert.False(t, boolValue(v), "%v should be falsy", v)
	}
}

func TestNormalizeRows(t *testing.T) {
	rows := []RawRow{
		{"first_name": "Alex", "last_name": "Kim"},
		{"first_name": "", "last_name": " "},
		{"first_name": "Jo", "last_name": "Singh"},
	}

	records, warnings := NormalizeRows(rows)

	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].RowIndex)
	assert.Equal(t, 3, records[1].RowIndex)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "row 2")
}
