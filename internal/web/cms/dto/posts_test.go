package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordListUnmarshal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want KeywordList
	}{
		{"array", `["go"," mongodb ","cms"]`, KeywordList{"go", "mongodb", "cms"}},
		{"comma string", `"go, mongodb , cms"`, KeywordList{"go", "mongodb", "cms"}},
		{"empty entries dropped", `["go","",",",""]`, KeywordList{"go", ","}},
		{"empty string", `""`, KeywordList{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got KeywordList
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			require.Equal(t, tc.want, got)
		})
	}

	var got KeywordList
	require.Error(t, json.Unmarshal([]byte(`123`), &got))
}

func TestPostRequestUnmarshal(t *testing.T) {
	t.Parallel()

	raw := `{"title":"Hello","meta_keywords":"a,b","status":"draft"}`
	var req PostRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	require.Equal(t, "Hello", req.Title)
	require.Equal(t, KeywordList{"a", "b"}, req.MetaKeywords)
	require.Nil(t, req.ScheduledAt)
}
