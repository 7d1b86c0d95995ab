package cricsheet

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cricbase/cricbase-data/internal/cricclean"
	"github.com/cricbase/cricbase-data/internal/frame"
)

// DefaultBaseURL is the cricsheet download root.
const DefaultBaseURL = "https://cricsheet.org/downloads"

// Archive holds the parsed contents of one cricsheet zip: the combined
// ball-by-ball table and the long-format match metadata rows.
type Archive struct {
	Deliveries *frame.Frame
	Info       *frame.Frame
}

// FetchClient downloads and extracts cricsheet CSV archives.
type FetchClient struct {
	http    *resty.Client
	baseURL string
	logger  *slog.Logger
}

// NewFetchClient creates a cricsheet download client.
func NewFetchClient(baseURL string, logger *slog.Logger) *FetchClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchClient{
		http:    resty.New().SetTimeout(2 * time.Minute),
		baseURL: baseURL,
		logger:  logger,
	}
}

// Fetch downloads the {competition}_{gender}_csv2.zip archive and
// parses the ball-by-ball CSV plus every per-match info CSV. Fetch
// errors are propagated, never retried here.
func (c *FetchClient) Fetch(ctx context.Context, competition, gender string) (*Archive, error) {
	gender = strings.ToLower(gender)
	if gender != "male" && gender != "female" {
		return nil, fmt.Errorf("gender must be \"male\" or \"female\", got %q: %w",
			gender, cricclean.ErrInvalidArgument)
	}
	if competition == "" {
		return nil, fmt.Errorf("competition is required: %w", cricclean.ErrInvalidArgument)
	}

	url := fmt.Sprintf("%s/%s_%s_csv2.zip", c.baseURL, competition, gender)
	c.logger.Info("downloading cricsheet archive", "url", url)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("download %s: HTTP %d", url, resp.StatusCode())
	}

	return ParseArchive(bytes.NewReader(resp.Body()), int64(len(resp.Body())))
}

// ParseArchive reads a cricsheet csv2 zip from memory.
func ParseArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}

	arch := &Archive{}
	info := newInfoBuilder()

	for _, file := range zr.File {
		name := path.Base(file.Name)
		switch {
		case name == "all_matches.csv":
			rc, err := file.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", file.Name, err)
			}
			arch.Deliveries, err = frame.FromCSV(rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file.Name, err)
			}
		case strings.HasSuffix(name, "_info.csv"):
			matchID := strings.TrimSuffix(name, "_info.csv")
			rc, err := file.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", file.Name, err)
			}
			err = info.addFile(matchID, rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file.Name, err)
			}
		}
	}

	if arch.Deliveries == nil {
		return nil, fmt.Errorf("archive has no all_matches.csv: unexpected archive shape")
	}
	arch.Info = info.frame()
	return arch, nil
}

// infoBuilder accumulates long-format metadata rows across the
// per-match info files: one row per (match_id, key, value) with the
// player name filled for squad-listing rows.
type infoBuilder struct {
	matchIDs []string
	keys     []string
	values   []string
	players  []string
	hasName  []bool
}

func newInfoBuilder() *infoBuilder { return &infoBuilder{} }

func (b *infoBuilder) addFile(matchID string, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		// Rows look like: info,venue,Eden Gardens
		// or for squads:  info,players,India,V Kohli
		if len(record) < 3 || record[0] != "info" {
			continue
		}
		b.matchIDs = append(b.matchIDs, matchID)
		b.keys = append(b.keys, record[1])
		b.values = append(b.values, record[2])
		if len(record) > 3 {
			b.players = append(b.players, record[3])
			b.hasName = append(b.hasName, true)
		} else {
			b.players = append(b.players, "")
			b.hasName = append(b.hasName, false)
		}
	}
}

func (b *infoBuilder) frame() *frame.Frame {
	f := frame.New()
	f.Set("match_id", frame.NewStrings(b.matchIDs))
	f.Set("key", frame.NewStrings(b.keys))
	f.Set("value", frame.NewStrings(b.values))
	f.Set("player", frame.NewStringsValid(b.players, b.hasName))
	return f
}
