package main

import (
	"log"

	"github.com/mholt/archiver"

	"github.com/smarty/releases/core"
	"github.com/smarty/releases/shell"
)

type ArchiveApp struct {
	config     ArchiveConfig
	fileSystem *shell.DiskFileSystem
	builder    *core.FileEntryBuilder
}

func NewArchiveApp(config ArchiveConfig) *ArchiveApp {
	fileSystem := shell.NewDiskFileSystem()
	return &ArchiveApp{
		config:     config,
		fileSystem: fileSystem,
		builder:    core.NewFileEntryBuilder(fileSystem),
	}
}

func (this *ArchiveApp) Run() int {
	log.Printf("Archiving %q to %q.", this.config.SourceDirectory, this.config.OutputPath)
	gz := archiver.NewTarGz()
	err := gz.Archive([]string{this.config.SourceDirectory}, this.config.OutputPath)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	entry, err := this.builder.BuildEntry(this.config.OutputPath)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	entry, err = modifyEntry(entry, this.config.Modifiers)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	entries, err := loadManifest(this.fileSystem, this.config.ManifestPath)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	entries = append(entries, entry)
	err = this.fileSystem.WriteFile(this.config.ManifestPath, []byte(core.FormatManifest(entries)+"\n"))
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	log.Printf("Added %q to manifest.", entry.Filename)
	return 0
}
