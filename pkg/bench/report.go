package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/KevoDB/cursor/pkg/telemetry"
	"github.com/klauspost/compress/zstd"
)

var csvHeader = []string{
	"Timestamp", "Workload", "Impl", "Size", "Rounds", "Duration", "NsPerElem", "Checksum",
}

// WriteCSV writes results as CSV with a header row
func WriteCSV(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			r.Timestamp.Format(time.RFC3339),
			r.Workload,
			r.Impl,
			strconv.Itoa(r.Size),
			strconv.Itoa(r.Rounds),
			strconv.FormatFloat(r.Duration, 'f', 6, 64),
			strconv.FormatFloat(r.NsPerElem, 'f', 2, 64),
			strconv.FormatUint(r.Checksum, 16),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses results written by WriteCSV
func ReadCSV(r io.Reader) ([]Result, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	// Skip header
	if len(records) <= 1 {
		return []Result{}, nil
	}
	records = records[1:]

	results := make([]Result, 0, len(records))
	for i, record := range records {
		if len(record) < len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i+1, len(csvHeader), len(record))
		}

		result, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func parseRow(record []string) (Result, error) {
	result := Result{Workload: record[1], Impl: record[2]}

	var err error
	if result.Timestamp, err = time.Parse(time.RFC3339, record[0]); err != nil {
		return Result{}, err
	}
	if result.Size, err = strconv.Atoi(record[3]); err != nil {
		return Result{}, err
	}
	if result.Rounds, err = strconv.Atoi(record[4]); err != nil {
		return Result{}, err
	}
	if result.Duration, err = strconv.ParseFloat(record[5], 64); err != nil {
		return Result{}, err
	}
	if result.NsPerElem, err = strconv.ParseFloat(record[6], 64); err != nil {
		return Result{}, err
	}
	if result.Checksum, err = strconv.ParseUint(record[7], 16, 64); err != nil {
		return Result{}, err
	}
	return result, nil
}

// SaveResults writes results as CSV to filename, zstd-compressed when the
// name ends in .zst.
func SaveResults(filename string, results []Result) (err error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(filename, ".zst") {
		return WriteCSV(file, results)
	}

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := WriteCSV(enc, results); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// LoadResults reads a file written by SaveResults
func LoadResults(filename string) ([]Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if !strings.HasSuffix(filename, ".zst") {
		return ReadCSV(file)
	}

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()
	return ReadCSV(dec)
}

// WriteText prints results as an aligned table, with the adapter to native
// time ratio on each adapter row.
func WriteText(w io.Writer, results []Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results to display")
		return err
	}

	native := make(map[string]float64)
	for _, r := range results {
		if r.Impl == telemetry.ImplNative {
			native[r.Workload] = r.Duration
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tIMPL\tSIZE\tROUNDS\tTOTAL\tNS/ELEM\tRATIO")
	for _, r := range results {
		ratio := "-"
		if n, ok := native[r.Workload]; ok && r.Impl != telemetry.ImplNative && n > 0 {
			ratio = fmt.Sprintf("%.2fx", r.Duration/n)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%.2f\t%s\n",
			r.Workload, r.Impl, r.Size, r.Rounds,
			time.Duration(r.Duration*float64(time.Second)).Round(time.Microsecond),
			r.NsPerElem, ratio)
	}
	return tw.Flush()
}
