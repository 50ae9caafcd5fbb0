// Command logload drives the logging pipeline with concurrent
// producers and reports pipeline counters on exit.
//
//	logload -output /tmp/load.log -workers 8 -count 10000
//	logload -config logger.yaml -workers 4
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/EmbeddedOS/logger"
	"github.com/EmbeddedOS/logger/config"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "config file (yaml or json)")
		output  = flag.String("output", "stdout", "sink: stdout, stderr or a path")
		level   = flag.String("level", "trace", "minimum severity")
		workers = flag.Int("workers", 8, "concurrent producers")
		count   = flag.Int("count", 10000, "records per producer")
		drop    = flag.Bool("drop", false, "drop records instead of blocking when full")
	)
	flag.Parse()

	opts, err := loadOptions(*cfgPath, *output, *level, *drop)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logload:", err)
		os.Exit(1)
	}

	if err := logger.Init(opts); err != nil {
		fmt.Fprintln(os.Stderr, "logload:", err)
		os.Exit(1)
	}

	pool, err := ants.NewPool(*workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logload:", err)
		os.Exit(1)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		worker := w
		err := pool.Submit(func() {
			defer wg.Done()
			for i := 0; i < *count; i++ {
				logger.Infof("hello %d from worker %d\n", i, worker)
			}
		})
		if err != nil {
			wg.Done()
			fmt.Fprintln(os.Stderr, "logload: submit:", err)
		}
	}
	wg.Wait()

	stats := logger.Default().Stats()
	if err := logger.Shutdown(); err != nil {
		fmt.Fprintln(os.Stderr, "logload: shutdown:", err)
	}
	fmt.Fprintln(os.Stderr, stats)
}

// loadOptions prefers the config file and falls back to flags.
func loadOptions(cfgPath, output, level string, drop bool) (logger.Options, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}

	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return logger.Options{}, err
	}
	return logger.Options{
		MinLevel:   lvl,
		OutputFile: output,
		DropOnFull: drop,
	}, nil
}
