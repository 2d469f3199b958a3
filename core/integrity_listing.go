package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/smarty/releases/contracts"
)

type FileListingIntegrityChecker struct {
	fileSystem contracts.FileChecker
}

func NewFileListingIntegrityChecker(fileSystem contracts.FileChecker) *FileListingIntegrityChecker {
	return &FileListingIntegrityChecker{fileSystem: fileSystem}
}

func (this *FileListingIntegrityChecker) Verify(entries []contracts.ReleaseEntry, localPath string) error {
	for _, entry := range entries {
		if entry.IsURL() {
			continue
		}
		fullPath := filepath.Join(localPath, entry.Filename)
		fileInfo, err := this.fileSystem.Stat(fullPath)
		if os.IsNotExist(err) {
			return fmt.Errorf("filename not found for %q", fullPath)
		}
		if err != nil {
			return err
		}
		if fileInfo.Size() != int64(entry.Length) {
			return fmt.Errorf("file size mismatch for %q (expected: [%d], actual: [%d])",
				fullPath, entry.Length, fileInfo.Size())
		}
	}
	log.Printf("Listing integrity check passed on %d entries.", len(entries))
	return nil
}
