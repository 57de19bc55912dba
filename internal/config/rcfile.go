package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/cmdext/internal/log"
	"github.com/footprint-tools/cmdext/internal/paths"
)

const (
	lockTimeout      = 5 * time.Second
	staleLockAge     = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another process holds the rc lock for
// longer than the lock timeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// RCFile is the key=value file at Path. Writes replace the file atomically;
// Lock serializes read-modify-write cycles across processes through a
// Path+".lock" sibling.
type RCFile struct {
	Path string
}

// Default returns the rc file in the user's home directory.
func Default() (RCFile, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return RCFile{}, err
	}
	return RCFile{Path: path}, nil
}

// Read returns the raw lines. A missing or empty file is created with the
// visible defaults.
func (f RCFile) Read() ([]string, error) {
	info, err := os.Stat(f.Path)
	fresh := errors.Is(err, fs.ErrNotExist) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(f.Path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(f.Path, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", f.Path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if fresh && len(lines) == 0 {
		lines = initializeDefaults()
		if err := f.Write(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}
	return lines, nil
}

// Write replaces the file with lines through a temp file and a rename.
func (f RCFile) Write(lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	var content strings.Builder
	for _, line := range lines {
		content.WriteString(line)
		content.WriteByte('\n')
	}

	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.WriteString(content.String()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// Lock runs fn while holding the rc lock. Locks older than staleLockAge
// are taken over.
func (f RCFile) Lock(fn func() error) error {
	lockPath := f.Path + ".lock"
	deadline := time.Now().Add(lockTimeout)

	for {
		held, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = held.WriteString(strconv.Itoa(os.Getpid()))
			_ = held.Close()
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config: lock %s: %w", lockPath, err)
		}

		if info, statErr := os.Stat(lockPath); statErr == nil && time.Since(info.ModTime()) > staleLockAge {
			log.Warn("config: removing stale lock %s", lockPath)
			_ = os.Remove(lockPath)
			continue
		}
		if time.Now().After(deadline) {
			return ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
	defer func() { _ = os.Remove(lockPath) }()

	return fn()
}

// Update applies edit to the current lines and writes the result, all under
// the lock.
func (f RCFile) Update(edit func([]string) []string) error {
	return f.Lock(func() error {
		lines, err := f.Read()
		if err != nil {
			return err
		}
		return f.Write(edit(lines))
	})
}

// ReadLines reads the default rc file.
func ReadLines() ([]string, error) {
	f, err := Default()
	if err != nil {
		return nil, err
	}
	return f.Read()
}

// WriteLines replaces the default rc file.
func WriteLines(lines []string) error {
	f, err := Default()
	if err != nil {
		return err
	}
	return f.Write(lines)
}

// WithLock runs fn under the default rc file's lock.
func WithLock(fn func() error) error {
	f, err := Default()
	if err != nil {
		return err
	}
	return f.Lock(fn)
}
