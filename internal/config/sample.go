package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// GenerateSampleConfig returns a commented TOML file documenting every
// option with its default value.
func GenerateSampleConfig() string {
	return `# clocksheet configuration file
# Every value below is the default; uncomment to change it.

# Log level: debug, info, warn or error
# log_level = "info"

# Timezone used for entry dates and times: IANA name (e.g., "Europe/Amsterdam") or "Local"
# timezone = "Local"

[clockify]
# base_url = "https://api.clockify.me/api/v1"
# Credentials may also come from CLOCKIFY_API_KEY, CLOCKIFY_WORKSPACE_ID and
# CLOCKIFY_USER_ID (a .env file in the working directory is loaded too).
# workspace_id = ""
# user_id = ""
# api_key = ""
# timeout_seconds = 30
# page_size = 200
# max_pages = 50

[workbook]
# "local" keeps sheets in a JSON file, "google" uses a Google Sheets spreadsheet
# backend = "local"
# path = ""             # local file; default is workbook.json next to this file
# spreadsheet_id = ""   # required for the google backend
# credentials_file = "" # service account JSON; default credentials when empty

[layout]
# entry_range = "A12:G200"
# totals_range = "A6:C9"
# start_cell = "C2"
# end_cell = "C3"
# description_cell = "E6"
# Rewrite the totals range after every pull (the local backend has no formulas)
# compute_totals = false

[report]
# entry_headers = ["Datum", "Starttijd", "Duur", "Categorie", "Omschrijving", "Details + Bewijslast", "_(C)_"]
# totals_headers = ["Onderdeel", "Deze week", "Totaal"]
# skip_header = "Starttijd"
# template_file = ""
#
# [[report.substitutions]]
# label = "R2D2"
# image = '![S](uploads/3d01f7850afee42575d32bd87f23c75c/image.png "S")'

[tui]
# Any bubbletint theme id, e.g. "dracula" or "nord"
# theme = ""
`
}

// Encode renders cfg as TOML. The API key is masked.
func Encode(cfg Config) (string, error) {
	if cfg.Clockify.APIKey != "" {
		cfg.Clockify.APIKey = mask(cfg.Clockify.APIKey)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
