package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
	"github.com/xuri/excelize/v2"
)

// Source is an open workbook that sheets can be read from by name.
type Source interface {
	// Sheet reads the named sheet. It returns an error wrapping ErrSheetNotFound
	// when the sheet does not exist.
	Sheet(name string) (models.Table, error)
	Close() error
}

// Open opens a workbook for reading. Legacy .xls files use the BIFF reader;
// everything else is opened as Office Open XML.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return openXLS(path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxSource{f: f}, nil
}

type xlsxSource struct {
	f *excelize.File
}

func (s *xlsxSource) Sheet(name string) (models.Table, error) {
	return ExtractTable(s.f, name)
}

func (s *xlsxSource) Close() error {
	return s.f.Close()
}
