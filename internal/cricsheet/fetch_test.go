package cricsheet

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildArchive(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestParseArchive(t *testing.T) {
	r := buildArchive(t, map[string]string{
		"all_matches.csv": "match_id,innings,ball,runs_off_bat,extras\n" +
			"m1,1,0.1,4,0\n" +
			"m1,1,0.2,0,1\n",
		"m1_info.csv": "version,2.1.0\n" +
			"info,venue,Eden Gardens\n" +
			"info,team,India\n" +
			"info,players,India,V Kohli\n",
		"README.txt": "not a csv",
	})

	arch, err := ParseArchive(r, int64(r.Len()))
	require.NoError(t, err)

	require.Equal(t, 2, arch.Deliveries.Len())
	require.Equal(t, "m1", arch.Deliveries.Col("match_id").Str(0))
	require.Equal(t, "0.2", arch.Deliveries.Col("ball").Str(1))

	info := arch.Info
	require.Equal(t, 3, info.Len())
	require.Equal(t, "m1", info.Col("match_id").Str(0))
	require.Equal(t, "venue", info.Col("key").Str(0))
	require.Equal(t, "Eden Gardens", info.Col("value").Str(0))

	// The version row is not an info row and is dropped.
	for i := 0; i < info.Len(); i++ {
		require.NotEqual(t, "version", info.Col("key").Str(i))
	}

	// Squad rows carry the player name; others leave it missing.
	require.True(t, info.Col("player").IsNull(0))
	require.Equal(t, "V Kohli", info.Col("player").Str(2))
}

func TestParseArchiveMissingDeliveries(t *testing.T) {
	r := buildArchive(t, map[string]string{
		"m1_info.csv": "info,venue,Lord's\n",
	})

	_, err := ParseArchive(r, int64(r.Len()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "all_matches.csv")
}

func TestParseArchiveNotAZip(t *testing.T) {
	r := bytes.NewReader([]byte("plainly not a zip file"))
	_, err := ParseArchive(r, int64(r.Len()))
	require.Error(t, err)
}
