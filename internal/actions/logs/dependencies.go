package logs

import (
	"os"

	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/paths"
)

type Deps struct {
	LogFilePath func() string
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
	ReadFile    func(string) ([]byte, error)
	WriteFile   func(string, []byte, os.FileMode) error
	Stat        func(string) (os.FileInfo, error)
}

func DefaultDeps(out domain.OutputWriter) Deps {
	return Deps{
		LogFilePath: paths.LogFilePath,
		Printf:      out.Printf,
		Println:     out.Println,
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
		Stat:        os.Stat,
	}
}
