package mongo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMongoURI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		dialInfo DialInfo
		expected string
	}{
		{
			name:     "no credentials",
			dialInfo: DialInfo{Addr: "localhost:27017", DBName: "cms"},
			expected: "mongodb://localhost:27017/cms",
		},
		{
			name:     "with credentials",
			dialInfo: DialInfo{Addr: "db:27017", DBName: "cms", User: "writer", Pwd: "s3cret"},
			expected: "mongodb://writer:s3cret@db:27017/cms",
		},
		{
			name:     "credentials need escaping",
			dialInfo: DialInfo{Addr: "db:27017", DBName: "cms", User: "w@iter", Pwd: "p:wd"},
			expected: "mongodb://w%40iter:p%3Awd@db:27017/cms",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, buildMongoURI(tc.dialInfo))
		})
	}
}
