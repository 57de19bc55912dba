package config

import (
	"github.com/footprint-tools/cmdext/internal/config"
	"github.com/footprint-tools/cmdext/internal/domain"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Lock       func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

// DefaultDeps wires the rc file helpers to out.
func DefaultDeps(out domain.OutputWriter) Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Lock:       config.WithLock,
		Set:        config.Set,
		Unset:      config.Unset,
		Get:        config.Get,
		GetAll:     config.GetAll,
		Printf:     out.Printf,
		Println:    out.Println,
	}
}

// withLock runs fn under deps.Lock when one is set.
func withLock(deps Deps, fn func() error) error {
	if deps.Lock == nil {
		return fn()
	}
	return deps.Lock(fn)
}
