package main

import (
	"log"

	"github.com/smarty/releases/core"
	"github.com/smarty/releases/shell"
)

type CheckApp struct {
	config     CheckConfig
	fileSystem *shell.DiskFileSystem
}

func NewCheckApp(config CheckConfig) *CheckApp {
	return &CheckApp{config: config, fileSystem: shell.NewDiskFileSystem()}
}

func (this *CheckApp) Run() int {
	raw, err := this.fileSystem.ReadFile(this.config.ManifestPath)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	entries, err := core.ParseManifest(string(raw))
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	entries = core.Filter(entries, this.config.EntryFilter)
	if len(entries) == 0 {
		log.Println("[WARN] No entries matched. You can go about your business. Move along.")
		return 0
	}
	checker := core.NewCompoundIntegrityCheck(
		core.NewFileListingIntegrityChecker(this.fileSystem),
		core.NewFileContentIntegrityCheck(this.fileSystem, this.config.Content),
	)
	err = checker.Verify(entries, this.config.LocalDirectory)
	if err != nil {
		log.Println("[WARN]", err)
		return 1
	}
	log.Printf("Verified %d entries against %q.", len(entries), this.config.LocalDirectory)
	return 0
}
