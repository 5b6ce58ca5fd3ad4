// Command blueprintdecode decodes a personal blueprint library file (or an
// import/export string) to JSON on stdout (spec.md §6 "CLI surface").
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/ernie/blueprint-decoder/internal/config"
	"github.com/ernie/blueprint-decoder/internal/exportstring"
	"github.com/ernie/blueprint-decoder/internal/history"
	"github.com/ernie/blueprint-decoder/internal/library"
	"github.com/ernie/blueprint-decoder/internal/monitor"
	"github.com/ernie/blueprint-decoder/internal/preview"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("blueprintdecode", flag.ContinueOnError)
	skipBad := fs.BoolP("skip-bad", "s", false, "skip blueprint slots that fail to parse instead of aborting")
	verbose := fs.BoolP("verbose", "v", false, "print a one-line summary to stderr before the JSON body")
	dumpStream := fs.BoolP("dump", "d", false, "print how many bytes of the input the decode consumed, for debugging")
	hexOut := fs.BoolP("hex", "x", false, "hex-dump the input file and exit, without decoding")
	batchDir := fs.String("batch", "", "decode every *.dat file under dir, recording to the history store")
	watchAddr := fs.String("watch", "", "start the progress monitor on this address (e.g. :8089)")
	configPath := fs.String("config", "", "load CLI defaults and prototype-class overrides from a YAML file")
	exportStr := fs.String("export-string", "", "decode an import/export string instead of a file")
	previewPath := fs.String("preview", "", "render the first decoded blueprint's layout to this TGA path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg *config.Config
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		cfg = c
	} else {
		cfg = &config.Config{}
	}
	if !fs.Changed("skip-bad") {
		*skipBad = cfg.SkipBad
	}

	classes, err := cfg.ClassTable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var events chan monitor.Event
	if *watchAddr != "" {
		secret := []byte(os.Getenv("BLUEPRINTDECODE_MONITOR_SECRET"))
		if len(secret) == 0 {
			secret = []byte("dev-secret")
		}
		srv := monitor.NewServer(secret)
		events = make(chan monitor.Event, 256)
		go srv.Pump(events)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/progress", srv)
			if err := http.ListenAndServe(*watchAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "monitor: %v\n", err)
			}
		}()
		if token, err := srv.IssueToken("cli-operator"); err == nil {
			fmt.Fprintf(os.Stderr, "monitor listening on %s (bearer token: %s)\n", *watchAddr, token)
		}
	}

	if *batchDir != "" {
		return runBatch(*batchDir, classes, *skipBad, events)
	}

	var raw []byte
	var name string
	if *exportStr != "" {
		decoded, err := exportstring.Decode(*exportStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		raw, name = decoded, "<export-string>"
	} else {
		path := fs.Arg(0)
		if path == "" && cfg.DefaultFile != "" {
			path = cfg.DefaultFile
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "usage: blueprintdecode [flags] <file>")
			return 2
		}
		buf, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		raw, name = buf, path
	}

	if *hexOut {
		dumpHex(os.Stdout, raw)
		return 0
	}

	start := time.Now()
	r := stream.New(raw)
	result, err := library.Decode(r, name, classes, *skipBad, events)
	elapsed := time.Since(start)
	if err != nil {
		if pe, ok := err.(*stream.ParseError); ok {
			fmt.Fprintf(os.Stderr, "%s: parse error at offset %d: %s\n", name, pe.Offset, pe.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "%s: decoded in %s (%s), %d slot(s) skipped\n",
			name, elapsed.Round(time.Millisecond), humanize.Bytes(uint64(len(raw))), result.Skipped)
	}
	if *dumpStream {
		fmt.Fprintf(os.Stderr, "%s: consumed %d of %d bytes\n", name, r.Tell(), r.Len())
	}

	if *previewPath != "" {
		if err := writePreview(result.Book, *previewPath); err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if result.Skipped > 0 {
		return 2
	}
	return 0
}

func runBatch(dir string, classes prototype.ClassTable, skipBad bool, events chan monitor.Event) int {
	store, err := history.Open(filepath.Join(dir, ".blueprintdecode-history.sqlite"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer store.Close()

	exitCode := 0
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".dat") {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
			return nil
		}

		start := time.Now()
		result, err := library.Decode(stream.New(raw), path, classes, skipBad, events)
		duration := time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
			return nil
		}

		rec := history.Record{
			FilePath:       path,
			ContentHash:    history.ContentHash(raw),
			DecodedAt:      history.Now(),
			SkippedCount:   result.Skipped,
			DurationMs:     duration.Milliseconds(),
			DecoderVersion: moduleVersion,
		}
		if bps, ok := result.Book["blueprints"].([]interface{}); ok {
			rec.SlotCount = len(bps)
			rec.BlueprintCount = countBlueprints(bps)
		}
		if err := store.Put(rec); err != nil {
			fmt.Fprintf(os.Stderr, "%s: history: %v\n", path, err)
		}
		fmt.Printf("%s\t%s\t%d skipped\n", path, duration.Round(time.Millisecond), result.Skipped)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

func countBlueprints(slots []interface{}) int {
	n := 0
	for _, s := range slots {
		if m, ok := s.(map[string]interface{}); ok {
			if _, ok := m["blueprint"]; ok {
				n++
			}
		}
	}
	return n
}

// moduleVersion is a fixed build tag until this command grows a real release
// process; recorded alongside every history row so a schema or behavior
// change downstream is visible in old batch runs.
const moduleVersion = "0.1.0"

// writePreview renders the first blueprint slot found in book to a TGA file
// at path (spec.md §4.L). book may be a library, a single blueprint, or a
// blueprint-book; the first nested "entities" list found is used.
func writePreview(book map[string]interface{}, path string) error {
	entities := findEntities(book)
	if entities == nil {
		return fmt.Errorf("no entities found to preview")
	}

	out := make([]preview.Entity, 0, len(entities))
	for _, e := range entities {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		pos, ok := m["position"].(map[string]interface{})
		if !ok {
			continue
		}
		x, _ := pos["x"].(float64)
		y, _ := pos["y"].(float64)
		name, _ := m["name"].(string)
		out = append(out, preview.Entity{X: x, Y: y, Category: categoryOf(name)})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return preview.Render(f, out)
}

func findEntities(v interface{}) []interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	if entities, ok := m["entities"].([]interface{}); ok {
		return entities
	}
	if bps, ok := m["blueprints"].([]interface{}); ok {
		for _, slot := range bps {
			if entities := findEntities(slot); entities != nil {
				return entities
			}
		}
	}
	for _, key := range []string{"blueprint", "blueprint_book"} {
		if nested, ok := m[key]; ok {
			if entities := findEntities(nested); entities != nil {
				return entities
			}
		}
	}
	return nil
}

func categoryOf(name string) string {
	switch {
	case strings.Contains(name, "turret") || strings.Contains(name, "artillery"):
		return "turret"
	case strings.Contains(name, "chest") || strings.Contains(name, "tank"):
		return "container"
	case strings.Contains(name, "locomotive") || strings.Contains(name, "wagon"):
		return "rail-vehicle"
	default:
		return "generic"
	}
}

func dumpHex(w *os.File, buf []byte) {
	for i := 0; i < len(buf); i += 16 {
		end := i + 16
		if end > len(buf) {
			end = len(buf)
		}
		fmt.Fprintf(w, "%08x  % x\n", i, buf[i:end])
	}
}
