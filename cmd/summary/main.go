package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/UTD-JLA/collection/pkg/activities"
)

var configPath = flag.String("config", "config.toml", "Path to config file")
var path = flag.String("path", "", "path to export file (overrides export_path)")

func main() {
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	config, err := loadConfig(*configPath, flagSet("config"))
	if err != nil {
		log.Fatal(err)
	}

	if *path != "" {
		config.ExportPath = *path
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.Level()}))

	if err := run(config, logger, os.Stdout); err != nil {
		logger.Error("Unable to summarize export", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// loadConfig reads file over the defaults. A missing file is only tolerated
// when the path was not given explicitly.
func loadConfig(file string, explicit bool) (*Config, error) {
	config := NewConfig()

	if err := config.Load(file); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return config, nil
}

func flagSet(name string) (set bool) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return
}

func run(config *Config, logger *slog.Logger, out io.Writer) error {
	if config.ExportPath == "" {
		return errors.New("path is required")
	}

	grouping, err := activities.ParseGrouping(config.GroupBy)
	if err != nil {
		return err
	}

	f, err := os.Open(config.ExportPath)
	if err != nil {
		return err
	}

	defer f.Close()

	logger.Debug("reading export", slog.String("path", config.ExportPath), slog.Bool("compressed", config.Compressed))

	var as []*activities.Activity
	if config.Compressed {
		as, err = activities.ReadCompressedJSONL(f)
	} else {
		as, err = activities.ReadJSONL(f)
	}

	if err != nil {
		return fmt.Errorf("unable to read export: %w", err)
	}

	index := activities.Index(as)
	reading, listening := activities.SplitByImmersionType(index)

	logger.Info("export loaded",
		slog.Int("records", len(as)),
		slog.Int("live", index.Len()),
		slog.Int("reading", reading.Len()),
		slog.Int("listening", listening.Len()))

	totals, err := activities.Totals(index, config.Timezone, grouping)
	if err != nil {
		return err
	}

	summary := activities.Summarize(totals, config.Top)

	fmt.Fprintf(out, "Total: %.0f minutes\n", summary.Total.Minutes())
	fmt.Fprintf(out, "Average: %.0f minutes\n", summary.Average.Minutes())

	if summary.Highest == "" {
		fmt.Fprintln(out, "Highest: N/A")
	} else {
		fmt.Fprintf(out, "Highest: %.0f minutes (%s)\n", summary.HighestTotal.Minutes(), summary.Highest)
	}

	labels, minutes := activities.ChartSeries(totals)
	logger.Debug("chart series", slog.Any("labels", labels), slog.Any("minutes", minutes))

	for i, e := range summary.Top {
		fmt.Fprintf(out, "%d. %s %s\n", i+1, e.Key, e.Value.Round(time.Minute))
	}

	snapshot, err := json.Marshal(totals)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Buckets: %s\n", snapshot)

	return nil
}
