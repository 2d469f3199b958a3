package shell

import (
	"bytes"
	"io"
	"os"
	"sort"
	"time"

	"github.com/smarty/releases/contracts"
)

// InMemoryFileSystem is a deterministic test double for the disk filesystem.
// Failure injection: ErrorForPath causes Open and ReadFile on that path to
// fail with the supplied error, exercising callers' io-failure paths.
type InMemoryFileSystem struct {
	fileSystem map[string]*file
	errors     map[string]error
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		fileSystem: make(map[string]*file),
		errors:     make(map[string]error),
	}
}

func (this *InMemoryFileSystem) ErrorForPath(path string, err error) {
	this.errors[path] = err
}

func (this *InMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return target, nil
}

func (this *InMemoryFileSystem) Listing() (files []contracts.FileInfo) {
	for _, file := range this.fileSystem {
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files
}

func (this *InMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	if err, found := this.errors[path]; found {
		return nil, err
	}
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(target.contents)), nil
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	if err, found := this.errors[path]; found {
		return nil, err
	}
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return target.contents, nil
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) error {
	this.fileSystem[path] = &file{
		path:     path,
		contents: content,
		mod:      InMemoryModTime,
	}
	return nil
}

func (this *InMemoryFileSystem) Delete(path string) {
	delete(this.fileSystem, path)
}

/////////////////////////////////////////////////

type file struct {
	path     string
	contents []byte
	mod      time.Time
}

var InMemoryModTime = time.Now()

func (this *file) Path() string       { return this.path }
func (this *file) Size() int64        { return int64(len(this.contents)) }
func (this *file) ModTime() time.Time { return this.mod }
