package credentials

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	got := Encode(Record{ClientID: "abc123", ClientSecret: "s3cr3t"})

	want := "{\r\n" +
		"  \"client_id\": \"abc123\",\r\n" +
		"  \"client_secret\": \"s3cr3t\",\r\n" +
		"  \"default_uri\": \"\"\r\n" +
		"}\r\n"
	assert.Equal(t, want, string(got))
}

func TestEncodeIsValidJSON(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want Record
	}{
		{
			name: "Plain values",
			rec:  Record{ClientID: "abc123", ClientSecret: "s3cr3t", DefaultURI: "spotify:album:1DFixLWuPkv3KT3TnV35m3"},
		},
		{
			name: "Quote backslash and newline in secret",
			rec:  Record{ClientID: "id", ClientSecret: "a\"b\\c\nd"},
		},
		{
			name: "CRLF collapses to LF",
			rec:  Record{ClientID: "id", ClientSecret: "line1\r\nline2"},
			want: Record{ClientID: "id", ClientSecret: "line1\nline2"},
		},
		{
			name: "Lone CR and tab",
			rec:  Record{ClientID: "id\t1", ClientSecret: "x\ry"},
		},
		{
			name: "Control characters",
			rec:  Record{ClientID: "\x00\x01\x1f\x7f", ClientSecret: "s"},
		},
		{
			name: "Non-ASCII and astral runes",
			rec:  Record{ClientID: "clé", ClientSecret: "🎵 wake up", DefaultURI: "https://open.spotify.com/playlist/ÄÖÜ"},
		},
		{
			name: "HTML-looking characters stay literal",
			rec:  Record{ClientID: "<id>&", ClientSecret: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Encode(tt.rec)

			for _, c := range data {
				require.Less(t, c, byte(0x80), "output must be ASCII")
			}

			var got map[string]string
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Len(t, got, 3)

			want := tt.rec
			if tt.want != (Record{}) {
				want = tt.want
			}
			assert.Equal(t, want.ClientID, got["client_id"])
			assert.Equal(t, want.ClientSecret, got["client_secret"])
			assert.Equal(t, want.DefaultURI, got["default_uri"])
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\\b`, Escape(`a\b`))
	assert.Equal(t, `say \"hi\"`, Escape(`say "hi"`))
	assert.Equal(t, `a\nb\nc`, Escape("a\r\nb\nc"))
	assert.Equal(t, `\u00e9`, Escape("é"))
	assert.Equal(t, `\ud83c\udfb5`, Escape("🎵"))
	assert.Equal(t, `\u0000\t\r`, Escape("\x00\t\r"))
	assert.Equal(t, `pw\ufffd`, Escape("pw\xff"))
}

func TestEncodeInvalidUTF8(t *testing.T) {
	out := Encode(Record{ClientID: "id", ClientSecret: "s\xffx"})

	var got map[string]string
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "s\ufffdx", got["client_secret"])
}

func TestDecode(t *testing.T) {
	t.Run("Missing default URI", func(t *testing.T) {
		rec, err := Decode([]byte(`{"client_id":"abc","client_secret":"def"}`))
		require.NoError(t, err)
		assert.Equal(t, Record{ClientID: "abc", ClientSecret: "def"}, rec)
	})

	t.Run("Null default URI", func(t *testing.T) {
		rec, err := Decode([]byte(`{"client_id":"abc","client_secret":"def","default_uri":null}`))
		require.NoError(t, err)
		assert.Equal(t, "", rec.DefaultURI)
	})

	t.Run("Unknown keys ignored", func(t *testing.T) {
		rec, err := Decode([]byte(`{"client_id":"abc","client_secret":"def","default_uri":"spotify:track:x","theme":"dark"}`))
		require.NoError(t, err)
		assert.Equal(t, "spotify:track:x", rec.DefaultURI)
	})

	t.Run("Round trip through Encode", func(t *testing.T) {
		in := Record{ClientID: `c"i\d`, ClientSecret: "s\ne", DefaultURI: "spotify:playlist:abc"}
		rec, err := Decode(Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, rec)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Decode([]byte(`{"client_id":`))
		assert.Error(t, err)
	})
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "******", Mask("s3cr3t"))
	assert.Equal(t, "0123...cdef", Mask("0123456789abcdef"))
}
