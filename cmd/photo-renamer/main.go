package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Nius/Photo-Renamer/internal/config"
	"github.com/Nius/Photo-Renamer/internal/download"
	"github.com/Nius/Photo-Renamer/internal/model"
)

func main() {
	// Command line flags
	var (
		inputFlag       = flag.String("input", "", "Saved album page(s) to process (semicolon-separated)")
		outputFlag      = flag.String("output", "", "Output directory (overrides config)")
		configFlag      = flag.String("config", "", "Path to config file")
		prefixFlag      = flag.String("prefix", "", "Filename prefix (overrides config)")
		suffixFlag      = flag.String("suffix", "", "Filename suffix (overrides config)")
		keepSourcesFlag = flag.Bool("keep-sources", false, "Never delete the input files")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag      = flag.Bool("dry-run", false, "Compute filenames without downloading")
	)

	flag.Parse()

	if *inputFlag == "" && flag.NArg() == 0 {
		fmt.Println("Photo Renamer - Extract, rename and download album photos")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  photo-renamer -input <file.mhtml> [options]")
		fmt.Println("  photo-renamer <file.mhtml> [<file.mhtml> ...] [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: photo-renamer-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *outputFlag != "" {
		// An explicit -output wins over the follow-the-input behavior.
		settings.OutputDirectory = *outputFlag
		settings.AutoUseInputDir = false
	}
	if *prefixFlag != "" {
		settings.Prefix = *prefixFlag
	}
	if *suffixFlag != "" {
		settings.Suffix = *suffixFlag
	}
	if *keepSourcesFlag {
		settings.DeleteInputFiles = false
	}

	// Collect input paths
	var paths []string
	for _, part := range strings.Split(*inputFlag, ";") {
		if part = strings.TrimSpace(part); part != "" {
			paths = append(paths, part)
		}
	}
	paths = append(paths, flag.Args()...)

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("📷 Photo Renamer")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	result := manager.Plan()

	fmt.Println()
	for _, photo := range manager.Photos() {
		marker := " "
		switch {
		case photo.Status.IsAtLeastAsBadAs(model.StatusErrorMinor):
			marker = "✗"
		case photo.Status == model.StatusWarningLength:
			marker = "!"
		}
		fmt.Printf("  %s %s\n", marker, photo.Description)
	}
	fmt.Println()

	if *dryRunFlag {
		fmt.Println("[Dry run - not downloading]")
		return
	}

	if result.Worst.BlocksExecution() {
		fmt.Fprintf(os.Stderr, "Cannot download: worst status is %s.\n", result.Worst)
		fmt.Fprintln(os.Stderr, "Adjust the naming options, or use photo-renamer-tui to edit descriptions by hand.")
		os.Exit(1)
	}

	fmt.Println("📥 Starting downloads...")
	fmt.Println()

	if err := manager.Execute(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		os.Exit(1)
	}

	received, total, filesReceived, filesTotal := manager.Progress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Saved %d/%d photos (%.2f MB)\n", filesReceived, filesTotal, float64(received)/1024/1024)
	if total > 0 && received < total {
		fmt.Printf("   (%.2f MB expected)\n", float64(total)/1024/1024)
	}
}
