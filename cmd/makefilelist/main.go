package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/ivlev/timelapse/internal/filelist"
)

func main() {
	log.SetFlags(0)

	startPtr := pflag.Int("start", filelist.Unbounded, "First frame number to include (counter or suffix number; -1 = no lower bound)")
	endPtr := pflag.Int("end", filelist.Unbounded, "Last frame number to include (-1 = no upper bound)")
	outputPtr := pflag.String("output", "file_list.txt", "Output concat file list name")
	skipPtr := pflag.IntSlice("skip", nil, "Frame numbers to exclude, e.g. --skip 851,852,853")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Generate an ffmpeg concat file list from a directory of JPGs (auto-detects naming style).\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory>\n\nOptions:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	dir := pflag.Arg(0)

	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		log.Fatalf("[-] Not a directory: %s", dir)
	}

	entries, style, err := filelist.Scan(dir, *startPtr, *endPtr, *skipPtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	fmt.Printf("[*] Detected filename style: %s\n", style)
	if len(*skipPtr) > 0 {
		fmt.Printf("[*] Skipping frame numbers: %v\n", *skipPtr)
	}

	if err := filelist.Write(*outputPtr, entries); err != nil {
		log.Fatalf("[-] %v", err)
	}

	fmt.Printf("[+] Created %s with %d frames\n", *outputPtr, len(entries))
}
