package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/mohd-akram/luxon/ianazone"
	"github.com/mohd-akram/luxon/tzoracle"
)

var (
	atFlag   = flag.String("at", "", "Resolve offsets at this RFC 3339 instant instead of now")
	longFlag = flag.Bool("long", false, "Print the long offset designation")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Usage: tzoffset [-at <rfc3339>] [-long] <zone>...")
		os.Exit(1)
	}

	at := time.Now()
	if *atFlag != "" {
		var err error
		at, err = time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Println("parsing instant:", err)
			os.Exit(1)
		}
	}
	ms := float64(at.UnixMilli())

	format := tzoracle.NameShort
	if *longFlag {
		format = tzoracle.NameLong
	}

	for _, name := range args {
		z := ianazone.Create(name)
		if !z.IsValid() {
			fmt.Printf("%s: invalid zone\n", name)
			continue
		}
		fmt.Printf("%s: offset = %s (%v minutes), name = %s\n",
			name,
			z.FormatOffset(ms, ianazone.OffsetShort),
			z.Offset(ms),
			z.OffsetName(ms, ianazone.OffsetNameOptions{Format: format}))
	}
}
