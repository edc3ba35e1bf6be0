package divsplit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/parser"
)

// Load reads the Payout and Processed sheets from the workbook at path.
func Load(path string) (wb *models.Workbook, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}

	src, err := parser.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer func() {
		if cerr := src.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	wb = &models.Workbook{BookName: filepath.Base(path)}
	if wb.Payout, err = src.Sheet(models.SheetPayout); err != nil {
		return nil, NewSheetReadError(models.SheetPayout, err)
	}
	if wb.Processed, err = src.Sheet(models.SheetProcessed); err != nil {
		return nil, NewSheetReadError(models.SheetProcessed, err)
	}
	return wb, nil
}
