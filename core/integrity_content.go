package core

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"path/filepath"

	"github.com/smarty/releases/contracts"
)

type FileContentIntegrityCheck struct {
	fileSystem contracts.FileOpener
	enabled    bool
}

func NewFileContentIntegrityCheck(fileSystem contracts.FileOpener, enabled bool) *FileContentIntegrityCheck {
	return &FileContentIntegrityCheck{fileSystem: fileSystem, enabled: enabled}
}

func (this *FileContentIntegrityCheck) Verify(entries []contracts.ReleaseEntry, localPath string) error {
	if !this.enabled {
		return nil
	}
	for _, entry := range entries {
		if entry.IsURL() {
			continue
		}
		hasher := sha256.New()
		reader, err := this.fileSystem.Open(filepath.Join(localPath, entry.Filename))
		if err != nil {
			return err
		}
		_, err = io.Copy(hasher, reader)
		if err != nil {
			_ = reader.Close()
			return err
		}
		err = reader.Close()
		if err != nil {
			return err
		}
		if !bytes.Equal(hasher.Sum(nil), entry.SHA256[:]) {
			return fmt.Errorf("checksum mismatch for %q", entry.Filename)
		}
	}
	return nil
}
