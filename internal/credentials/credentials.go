// Package credentials holds the Spotify API credential record collected
// during setup and the rules for validating and serializing it.
package credentials

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Record is the configuration the installed application reads at startup.
type Record struct {
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	DefaultURI   string `json:"default_uri" yaml:"default_uri"` // optional, may be ""
}

// Decode parses a config file the same way the application does: missing or
// null default_uri becomes "", unknown keys are ignored. It does not validate.
func Decode(data []byte) (Record, error) {
	var raw struct {
		ClientID     *string `json:"client_id"`
		ClientSecret *string `json:"client_secret"`
		DefaultURI   *string `json:"default_uri"`
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("failed to parse config: %w", err)
	}

	var rec Record
	if raw.ClientID != nil {
		rec.ClientID = *raw.ClientID
	}
	if raw.ClientSecret != nil {
		rec.ClientSecret = *raw.ClientSecret
	}
	if raw.DefaultURI != nil {
		rec.DefaultURI = *raw.DefaultURI
	}
	return rec, nil
}

// Mask hides a secret for display, keeping the first and last four
// characters of long values.
func Mask(s string) string {
	rs := []rune(s)
	if len(rs) > 8 {
		return string(rs[:4]) + "..." + string(rs[len(rs)-4:])
	}
	return strings.Repeat("*", len(rs))
}
