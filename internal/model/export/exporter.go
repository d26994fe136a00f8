package export

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/daily-expenses/internal/entity/expense"
)

type fileSaver interface {
	Save(ctx context.Context, name string, content []byte) (string, error)
}

type Exporter struct {
	saver fileSaver
}

func NewExporter(saver fileSaver) *Exporter {
	return &Exporter{saver: saver}
}

// Export hands the CSV for expenses to the saver and returns where it landed.
// today is the local time whose calendar day names the file.
func (e *Exporter) Export(ctx context.Context, expenses []expense.Expense, today time.Time) (string, error) {
	path, err := e.saver.Save(ctx, FileName(today), []byte(BuildCSV(expenses)))
	return path, errors.Wrap(err, "export expenses")
}
