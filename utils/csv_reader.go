package utils

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NaNMarker is the only cell value read as missing. Blank cells stay blank and values
// like NA are kept as they are.
const NaNMarker = "NaN"

func stringFrameOptions(hasHeader bool) []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(hasHeader),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{NaNMarker}),
	}
}

// ReadStringCSV reads a CSV source with every column as string and returns the frame and
// its column names. The frame is nil when the source has a header but no data rows.
func ReadStringCSV(reader io.Reader) (*dataframe.DataFrame, []string, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading csv: %w", err)
	}

	frame := dataframe.ReadCSV(bytes.NewReader(content), stringFrameOptions(true)...)
	if frame.Err == nil {
		return &frame, frame.Names(), nil
	}

	// gota refuses a header without rows, read it as a single data row instead
	headerOnly := dataframe.ReadCSV(bytes.NewReader(content), stringFrameOptions(false)...)
	if headerOnly.Err != nil || headerOnly.Nrow() != 1 {
		return nil, nil, frame.Err
	}
	return nil, headerOnly.Records()[1], nil
}
