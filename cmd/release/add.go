package main

import (
	"log"
	"os"

	"github.com/smarty/releases/contracts"
	"github.com/smarty/releases/core"
	"github.com/smarty/releases/shell"
)

type AddApp struct {
	config     AddConfig
	fileSystem *shell.DiskFileSystem
	builder    *core.FileEntryBuilder
}

func NewAddApp(config AddConfig) *AddApp {
	fileSystem := shell.NewDiskFileSystem()
	return &AddApp{
		config:     config,
		fileSystem: fileSystem,
		builder:    core.NewFileEntryBuilder(fileSystem),
	}
}

func (this *AddApp) Run() int {
	entries, err := loadManifest(this.fileSystem, this.config.ManifestPath)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	for _, path := range this.config.Files {
		entry, err := this.buildEntry(path)
		if err != nil {
			log.Println("[WARN]", err)
			return 1
		}
		log.Printf("Adding %q to manifest.", entry.Filename)
		entries = append(entries, entry)
	}
	err = this.fileSystem.WriteFile(this.config.ManifestPath, []byte(core.FormatManifest(entries)+"\n"))
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	return 0
}

func (this *AddApp) buildEntry(path string) (contracts.ReleaseEntry, error) {
	entry, err := this.builder.BuildEntry(path)
	if err != nil {
		return contracts.ReleaseEntry{}, err
	}
	return modifyEntry(entry, this.config.Modifiers)
}

func modifyEntry(entry contracts.ReleaseEntry, modifiers EntryModifiers) (contracts.ReleaseEntry, error) {
	parsed, err := core.ParseVersion(modifiers.Version)
	if err != nil {
		return contracts.ReleaseEntry{}, err
	}
	return entry.
		WithVersion(parsed).
		WithDelta(modifiers.Delta).
		WithPercentage(modifiers.Percentage), nil
}

func loadManifest(fileSystem contracts.FileReader, path string) ([]contracts.ReleaseEntry, error) {
	raw, err := fileSystem.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return core.ParseManifest(string(raw))
}
