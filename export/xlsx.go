package export

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is the worksheet name used for xlsx output.
const Sheet = "Sheet1"

var xlsxHeader = []any{"id", "number", "name", "types", "rarity", "sprite"}

func writeXLSX(w io.Writer, out *Output) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(Sheet)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", xlsxHeader); err != nil {
		return err
	}

	for i, e := range out.Result {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{e.ID, e.Number, e.Name, strings.Join(e.Types, ", "), e.Rarity, e.Sprite}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
