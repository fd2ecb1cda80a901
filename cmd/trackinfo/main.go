// ABOUTME: Track inspection tool
// ABOUTME: Decodes audio files and prints their tags, format, and size without a device
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tracklab/audition/internal/audio/decode"
	"github.com/tracklab/audition/internal/meta"
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: trackinfo <file> [file...]")
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := printInfo(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

func printInfo(path string) error {
	src, err := decode.File(path)
	if err != nil {
		return err
	}

	info := meta.ReadTrackInfo(path)

	fmt.Printf("%s\n", path)
	fmt.Printf("  Title:    %s\n", info.Title)
	if info.Artist != "" {
		fmt.Printf("  Artist:   %s\n", info.Artist)
	}
	if info.Album != "" {
		fmt.Printf("  Album:    %s\n", info.Album)
	}
	if info.Year != 0 {
		fmt.Printf("  Year:     %d\n", info.Year)
	}
	if info.Genre != "" {
		fmt.Printf("  Genre:    %s\n", info.Genre)
	}

	f := src.Format()
	fmt.Printf("  Format:   %dHz, %d channels, %d-bit (decoded)\n", f.SampleRate, f.Channels, f.BitDepth)
	fmt.Printf("  Duration: %v\n", src.Duration().Round(time.Second))
	fmt.Printf("  PCM size: %s\n", humanize.Bytes(uint64(src.Size())))

	return nil
}
