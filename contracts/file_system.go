package contracts

import (
	"io"
	"time"
)

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileWriter interface {
	WriteFile(path string, content []byte) error
}

type FileInfo interface {
	Path() string
	Size() int64
	ModTime() time.Time
}
