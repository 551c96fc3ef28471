package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tracedump/ittech"
	"github.com/tracedump/ittech/version"
	"gopkg.in/yaml.v3"
)

func main() {
	jsonOut := flag.Bool("j", false, "Output the module as JSON to standard output.")
	yamlOut := flag.Bool("y", false, "Output the module as YAML to standard output.")
	channels := flag.Bool("c", false, "List the active channels of each module.")
	showVersion := flag.Bool("v", false, "Print the version and exit.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	for _, filename := range flag.Args() {
		if err := process(filename, *jsonOut, *yamlOut, *channels); err != nil {
			log.Error("could not process module", "file", filename, "err", err)
			os.Exit(1)
		}
	}
}

func process(filename string, jsonOut, yamlOut, channels bool) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var mod ittech.Module
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		err = json.Unmarshal(data, &mod)
	default:
		err = yaml.Unmarshal(data, &mod)
	}
	if err != nil {
		return err
	}
	if err := mod.Validate(); err != nil {
		log.Warn("module has dangling references", "file", filename, "err", err)
	}
	switch {
	case jsonOut:
		out, err := json.MarshalIndent(&mod, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case yamlOut:
		out, err := yaml.Marshal(&mod)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		printSummary(&mod, channels)
	}
	return nil
}

func printSummary(mod *ittech.Module, channels bool) {
	fmt.Printf("name:     %q\n", mod.Name)
	fmt.Printf("tempo:    %v, speed %v\n", mod.Tempo, mod.Speed)
	fmt.Printf("volume:   global %v, sample %v, pan separation %v\n",
		mod.GlobalVolume, mod.SampleVolume, mod.PanSeparation)
	fmt.Printf("flags:    %v\n", mod.Flags)
	fmt.Printf("orders:   %d entries\n", len(mod.Orders))
	fmt.Printf("contents: %d patterns, %d instruments, %d samples\n",
		len(mod.Patterns), len(mod.Instruments), len(mod.Samples))
	active := mod.ActiveChannels()
	fmt.Printf("channels: %d active\n", active.Count())
	if channels {
		for ch := range active.Channels() {
			fmt.Printf("  channel %d: panning %d, volume %d\n",
				ch, mod.InitChannelPanning[ch], mod.InitChannelVolume[ch])
		}
	}
	if lines := mod.MessageLines(); len(lines) > 0 {
		fmt.Println("message:")
		for _, line := range lines {
			fmt.Printf("  %s\n", line)
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Inspect tracker module files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
