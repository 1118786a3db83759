package filelist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ivlev/timelapse/internal/naming"
)

// Unbounded marks an absent --start/--end bound.
const Unbounded = -1

// Entry is one selected image: its path and the numeric key it sorts by.
type Entry struct {
	Index int
	Path  string
}

// Scan lists dir, auto-detects the filename style, and returns the entries
// whose keys fall inside [start, end] (inclusive; Unbounded disables a
// side) minus the skip set, sorted ascending by key. Skip values outside
// the range are no-ops. The detected style name is returned for reporting.
func Scan(dir string, start, end int, skip []int) ([]Entry, string, error) {
	if start != Unbounded && end != Unbounded && start > end {
		return nil, "", fmt.Errorf("invalid range: start %d > end %d", start, end)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, e := range dirEntries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	style, err := naming.Detect(names)
	if err != nil {
		return nil, "", err
	}

	skipSet := make(map[int]struct{}, len(skip))
	for _, n := range skip {
		skipSet[n] = struct{}{}
	}

	var entries []Entry
	for _, name := range names {
		key, ok := style.Match(name)
		if !ok {
			continue
		}
		if start != Unbounded && key < start {
			continue
		}
		if end != Unbounded && key > end {
			continue
		}
		if _, skipped := skipSet[key]; skipped {
			continue
		}
		entries = append(entries, Entry{Index: key, Path: filepath.Join(dir, name)})
	}

	if len(entries) == 0 {
		return nil, "", fmt.Errorf("no %s images found in the requested range", style.Name())
	}

	// Stable keeps directory order for duplicate keys.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	return entries, style.Name(), nil
}

// Write persists entries as an ffmpeg concat demuxer list, one
// "file '<path>'" directive per line.
func Write(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating list file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		fmt.Fprintf(w, "file '%s'\n", e.Path)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing list file: %w", err)
	}
	return nil
}

// Read parses a concat demuxer list back into the referenced paths,
// ignoring anything that is not a file directive.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening concat list: %w", err)
	}
	defer f.Close()

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "file") {
			continue
		}
		parts := strings.SplitN(line, "'", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed concat list line: %q", line)
		}
		paths = append(paths, parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading concat list: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("concat list %s contains no file entries", path)
	}
	return paths, nil
}

// WriteBoomerang writes a temporary concat list holding the forward
// sequence followed by the reversed sequence, minus the turning frame, so
// an N-frame list plays back as 2N-1 frames. The caller removes the file
// when the render finishes.
func WriteBoomerang(paths []string) (string, error) {
	tmp, err := os.CreateTemp("", "timelapse_boomerang_*.txt")
	if err != nil {
		return "", fmt.Errorf("creating boomerang list: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, p := range paths {
		fmt.Fprintf(w, "file '%s'\n", p)
	}
	for i := len(paths) - 2; i >= 0; i-- {
		fmt.Fprintf(w, "file '%s'\n", paths[i])
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing boomerang list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
