package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brogergvhs/postup/internal/browser"
	"github.com/brogergvhs/postup/internal/config"
	"github.com/brogergvhs/postup/internal/files"
	"github.com/brogergvhs/postup/internal/links"
	"github.com/brogergvhs/postup/internal/postimages"
	"github.com/brogergvhs/postup/internal/ui"
	"github.com/brogergvhs/postup/internal/util"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagDir      string
	flagAlbum    string
	flagAllowExt string

	// runtime
	flagBatchSize   int
	flagPollTimeout int
	flagHeadful     bool
	flagOpen        bool
	flagDryRun      bool

	// headers
	flagUserAgent string
)

func init() {
	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload all matching files under a folder and print the resulting album/image links. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runUpload,
	}

	// selection
	uploadCmd.Flags().StringVar(&flagDir, "dir", "", "root folder containing image files (searched recursively)")
	uploadCmd.Flags().StringVar(&flagAlbum, "album", "", "album/gallery title (optional)")
	uploadCmd.Flags().StringVar(&flagAllowExt, "allow-ext", "", "allowed image extensions (e.g. \"avif|jpg|png\")")

	// runtime
	uploadCmd.Flags().IntVar(&flagBatchSize, "batch-size", 500, "max files to attempt in a single upload")
	uploadCmd.Flags().IntVar(&flagPollTimeout, "poll-timeout", 0, "seconds to poll for result links per submission")
	uploadCmd.Flags().BoolVar(&flagHeadful, "headful", false, "run visible browser")
	uploadCmd.Flags().BoolVar(&flagOpen, "open", false, "open resulting link in host browser via $BROWSER")
	uploadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be uploaded, don't upload")

	// headers
	uploadCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Dir:          flagDir,
		AlbumTitle:   flagAlbum,
		PollTimeout:  flagPollTimeout,
		Headful:      flagHeadful,
		OpenLinks:    flagOpen,
		UserAgent:    flagUserAgent,
	})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = flagBatchSize
	}

	if flagAllowExt != "" {
		cfg.AllowExt = splitExt(flagAllowExt)
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	fmt.Println("Full config:")
	cfg.Print()
	fmt.Println()

	if cfg.DefaultDir == "" {
		return fmt.Errorf("missing --dir and no default_dir in config")
	}

	all, err := files.Collect(cfg.DefaultDir, cfg.AllowExt)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Printf("No matching files found under %s\n", cfg.DefaultDir)
		return nil
	}

	fmt.Printf("Found %d files.\n\n", len(all))

	if flagDryRun {
		batches := files.SplitBatches(all, cfg.BatchSize)
		fmt.Printf("Dry-run: %d files in %d batch(es) of at most %d.\n\n", len(all), len(batches), cfg.BatchSize)
		for i, b := range batches {
			fmt.Printf("%3d) %d files, %s\n    %s .. %s\n", i+1, len(b), util.Human(files.TotalSize(b)), b[0], b[len(b)-1])
		}
		return nil
	}

	session, err := browser.NewSession(browser.Options{
		Headful:   cfg.Headful,
		UserAgent: util.PickUserAgent(cfg.UserAgent),
	})
	if err != nil {
		return err
	}
	defer session.Close()

	util.SetupInterruptHandler(session.Close)

	ctx := context.Background()
	up := postimages.NewUploader(session, logSvc, time.Duration(cfg.PollTimeout)*time.Second)

	pm := ui.NewProgressManager()
	defer pm.Close()

	stats := &ui.Stats{}
	start := time.Now()

	// single submission first: postimages usually creates one album
	first := all
	if len(first) > cfg.BatchSize {
		first = all[:cfg.BatchSize]
	}

	handle := pm.Register("Upload")
	handle.SetTotal(len(first))

	result, err := up.Upload(ctx, first, cfg.AlbumTitle, handle)
	handle.MarkDone()
	pm.Close()

	if err != nil {
		logSvc.Errorf("Upload attempt failed: %v\n", err)
	}

	stats.TotalBatches.Add(1)
	stats.TotalFiles.Add(int64(len(first)))
	stats.TotalBytes.Add(files.TotalSize(first))

	if len(result) > 0 {
		stats.TotalLinks.Add(int64(len(result)))
		fmt.Println("Upload produced the following link(s):")
		for _, l := range result {
			fmt.Println(" -", l)
		}
		if cfg.OpenLinks {
			util.OpenInHostBrowser(result[0])
		}

		printSummary(stats, start)
		return nil
	}

	// no album from the bulk attempt; retry everything in batches
	fmt.Println("No album link found for single upload; falling back to batch uploads...")

	collected := links.NewSet()
	batches := files.SplitBatches(all, cfg.BatchSize)

	pm = ui.NewProgressManager()
	for i, batch := range batches {
		fmt.Printf("Uploading batch %d (%d files)...\n", i+1, len(batch))

		title := ""
		if i == 0 {
			title = cfg.AlbumTitle
		}

		handle := pm.Register(fmt.Sprintf("Batch %d", i+1))
		handle.SetTotal(len(batch))

		result, err := up.Upload(ctx, batch, title, handle)
		handle.MarkDone()
		if err != nil {
			logSvc.Errorf("Batch %d failed: %v\n", i+1, err)
			continue
		}

		collected.AddAll(result...)

		stats.TotalBatches.Add(1)
		stats.TotalFiles.Add(int64(len(batch)))
		stats.TotalBytes.Add(files.TotalSize(batch))

		if cfg.OpenLinks && len(result) > 0 {
			util.OpenInHostBrowser(result[0])
		}
	}
	pm.Close()

	if collected.Len() > 0 {
		stats.TotalLinks.Add(int64(collected.Len()))
		fmt.Println("Collected links:")
		for _, l := range collected.URLs() {
			fmt.Println(" -", l)
		}
	} else {
		fmt.Println("No links produced. Run with --headful to watch and debug the upload process.")
	}

	printSummary(stats, start)
	return nil
}

func printSummary(stats *ui.Stats, start time.Time) {
	fmt.Println()
	fmt.Println("Upload Summary:")
	fmt.Printf("Batches: %d\n", stats.TotalBatches.Load())
	fmt.Printf("Files:   %d\n", stats.TotalFiles.Load())
	fmt.Printf("Links:   %d\n", stats.TotalLinks.Load())
	fmt.Printf("Data:    %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Printf("Time:    %s\n", time.Since(start).Round(time.Second))
	fmt.Println("\nAll done.")
}

func splitExt(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})

	out := []string{}
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}
