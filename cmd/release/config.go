package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/smarty/releases/contracts"
)

type EntryModifiers struct {
	Version    string
	Delta      bool
	Percentage int
}

func (this *EntryModifiers) register(flags *flag.FlagSet) {
	flags.StringVar(&this.Version,
		"version",
		"0.0.0",
		"Semantic version recorded for each new entry.",
	)
	flags.BoolVar(&this.Delta,
		"delta",
		false,
		"When set, mark each new entry as a delta (incremental) package.",
	)
	flags.IntVar(&this.Percentage,
		"percent",
		contracts.FullyAvailable,
		"Staged-rollout percentage recorded for each new entry (0-100).",
	)
}

func (this *EntryModifiers) validate() error {
	if this.Percentage < 0 || this.Percentage > contracts.FullyAvailable {
		return errors.New("percent must be within [0,100]")
	}
	return nil
}

type AddConfig struct {
	ManifestPath string
	Modifiers    EntryModifiers
	Files        []string
}

func parseAddConfig(name string, args []string) (config AddConfig, err error) {
	flags := flag.NewFlagSet("release "+name, flag.ContinueOnError)
	flags.StringVar(&config.ManifestPath,
		"manifest",
		"RELEASES",
		"Path of the manifest to create or append to.",
	)
	config.Modifiers.register(flags)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(flags.Output(), "Usage of release %s [flags] <file>...:\n", name)
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(flags.Output(), `
exit code 0: success
exit code 1: general failure (see stderr for details)`)
	}
	err = flags.Parse(args)
	if err != nil {
		return AddConfig{}, err
	}
	config.Files = flags.Args()
	if len(config.Files) == 0 {
		return AddConfig{}, errors.New("at least one file is required")
	}
	return config, config.Modifiers.validate()
}

type CheckConfig struct {
	ManifestPath   string
	LocalDirectory string
	Content        bool
	EntryFilter    []string
}

func parseCheckConfig(args []string) (config CheckConfig, err error) {
	flags := flag.NewFlagSet("release check", flag.ContinueOnError)
	flags.StringVar(&config.ManifestPath,
		"manifest",
		"RELEASES",
		"Path of the manifest to verify against.",
	)
	flags.StringVar(&config.LocalDirectory,
		"dir",
		".",
		"Directory holding the artifacts named by the manifest.",
	)
	flags.BoolVar(&config.Content,
		"content",
		false,
		"When set, perform full file content validation (not just size).",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(flags.Output(), "Usage of release check [flags] [filename]...:")
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(flags.Output(), `
  Filenames may be passed as non-flag arguments and will serve as a filter
  against the manifest's entries.

exit code 0: all artifacts verified
exit code 1: general failure or verification failure (see stderr for details)`)
	}
	err = flags.Parse(args)
	if err != nil {
		return CheckConfig{}, err
	}
	config.EntryFilter = flags.Args()
	return config, nil
}

type ArchiveConfig struct {
	SourceDirectory string
	OutputPath      string
	ManifestPath    string
	Modifiers       EntryModifiers
}

func parseArchiveConfig(args []string) (config ArchiveConfig, err error) {
	flags := flag.NewFlagSet("release archive", flag.ContinueOnError)
	flags.StringVar(&config.SourceDirectory,
		"source",
		"",
		"Directory to package into the artifact.",
	)
	flags.StringVar(&config.OutputPath,
		"output",
		"",
		"Path of the tar.gz artifact to create.",
	)
	flags.StringVar(&config.ManifestPath,
		"manifest",
		"RELEASES",
		"Path of the manifest to create or append to.",
	)
	config.Modifiers.register(flags)
	err = flags.Parse(args)
	if err != nil {
		return ArchiveConfig{}, err
	}
	if config.SourceDirectory == "" {
		return ArchiveConfig{}, errors.New("source directory is required")
	}
	if config.OutputPath == "" {
		return ArchiveConfig{}, errors.New("output path is required")
	}
	if _, err := os.Stat(config.SourceDirectory); err != nil {
		return ArchiveConfig{}, err
	}
	return config, config.Modifiers.validate()
}
