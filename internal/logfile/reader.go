// Package logfile acquires raw log content: existence checks, transparent
// gzip decompression and file-name date extraction. It hands the rest of the
// pipeline a structured (date, lines) pair so nothing downstream needs to
// know how the bytes arrived.
package logfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/models"
	"github.com/mcstats/mcstats/internal/parser"
)

// ReadAll reads every path that exists, in the order given. Missing paths
// are skipped with a verbose diagnostic; a file that exists but cannot be
// read or decompressed is excluded whole, so a half-read file can never leak
// into the aggregates.
func ReadAll(paths []string, rep *diag.Reporter) []models.LogFile {
	files := make([]models.LogFile, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			rep.Verbosef("%s is not a file", path)
			continue
		}
		f, err := Read(path)
		if err != nil {
			rep.Problemf("read", "%s excluded: %v", path, err)
			continue
		}
		if !recognizedExt(path) {
			rep.Verbosef("%s is not a logfile", path)
		}
		files = append(files, f)
	}
	return files
}

// Read loads a single log file. Recognized extensions: .gz (gzipped), .log
// and .txt (plain). Anything else yields an empty file and a diagnostic-free
// result the caller can still process uniformly.
func Read(path string) (models.LogFile, error) {
	name := filepath.Base(path)
	f := models.LogFile{
		Path: path,
		Name: name,
		Date: dateFromName(name),
	}

	file, err := os.Open(path)
	if err != nil {
		return models.LogFile{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return models.LogFile{}, fmt.Errorf("decompressing %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case ".log", ".txt":
		r = file
	default:
		// Not a log file; keep the entry but give it no lines.
		f.Lines = []string{}
		return f, nil
	}

	lines, err := readLines(r)
	if err != nil {
		return models.LogFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	f.Lines = lines
	return f, nil
}

func recognizedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".log", ".txt":
		return true
	}
	return false
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 256)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// dateFromName pulls a YYYY-MM-DD date out of a rotated-log file name
// (2014-03-28-1.log.gz). Returns the zero time when absent (latest.log).
func dateFromName(name string) time.Time {
	frag, ok := parser.Match(parser.KindFileDate, name)
	if !ok {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", frag)
	if err != nil {
		return time.Time{}
	}
	return d
}
