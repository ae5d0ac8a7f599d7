package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnassignedTeam is the sentinel team for rows without a team column.
const UnassignedTeam = "Unassigned"

// Column aliases, probed in order; headers match case-sensitively.
var (
	firstNameAliases = []string{"first_name", "First name", "firstname"}
	lastNameAliases  = []string{"last_name", "Last name", "lastname"}
	teamAliases      = []string{"team", "Team"}
	positionAliases  = []string{"position"}
	yearAliases      = []string{"year_group", "year"}
	captainAliases   = []string{"is_captain", "captain"}
	shirtAliases     = []string{"kit_number", "shirt_number", "kit"}
	quoteAliases     = []string{"quote", "player_quote", "Quote"}
	photoAliases     = []string{"photo", "photo_filename", "Photo"}
)

var truthyTokens = map[string]bool{
	"1": true, "true": true, "yes": true, "y": true, "t": true,
}

// NormalizeRow converts one raw row into a NormalizedRecord. It returns
// nil and a warning when both name fields are empty; coercion failures
// on optional fields yield absence, never an error.
func NormalizeRow(row RawRow, index int) (*NormalizedRecord, string) {
	first := stringValue(probe(row, firstNameAliases))
	last := stringValue(probe(row, lastNameAliases))
	if first == "" && last == "" {
		return nil, fmt.Sprintf("row %d: missing both names; skipping", index)
	}

	team := stringValue(probe(row, teamAliases))
	if team == "" {
		team = UnassignedTeam
	}

	return &NormalizedRecord{
		RowIndex:    index,
		FirstName:   first,
		LastName:    last,
		TeamName:    team,
		Position:    stringValue(probe(row, positionAliases)),
		Year:        intValue(probe(row, yearAliases)),
		IsCaptain:   boolValue(probe(row, captainAliases)),
		ShirtNumber: intValue(probe(row, shirtAliases)),
		Quote:       stringValue(probe(row, quoteAliases)),
		PhotoRaw:    stringValue(probe(row, photoAliases)),
	}, ""
}

// NormalizeRows normalizes all rows, collecting one warning per
// rejected row. Row indexes are 1-based data-row positions.
func NormalizeRows(rows []RawRow) ([]NormalizedRecord, []string) {
	var (
		records  []NormalizedRecord
		warnings []string
	)
	for i, row := range rows {
		rec, warn := NormalizeRow(row, i+1)
		if rec == nil {
			warnings = append(warnings, warn)
			continue
		}
		records = append(records, *rec)
	}
	return records, warnings
}

// probe returns the first present value among the aliases.
func probe(row RawRow, aliases []string) any {
	for _, a := range aliases {
		if v, ok := row[a]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

func intValue(v any) *int {
	switch val := v.(type) {
	case nil:
		return nil
	case int:
		return &val
	case int64:
		n := int(val)
		return &n
	case float64:
		if val != math.Trunc(val) {
			return nil
		}
		n := int(val)
		return &n
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &n
	}
}

func boolValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	default:
		return truthyTokens[strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))]
	}
}
