package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange прямоугольный диапазон ячеек (координаты 1-based, включительно)
type CellRange struct {
	MinCol int
	MinRow int
	MaxCol int
	MaxRow int
}

// ParseRange разбирает "M22:Q22" или одиночную ячейку "J5"
func ParseRange(ref string) (CellRange, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return CellRange{}, fmt.Errorf("%w: %q", ErrInvalidCell, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return CellRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidCell, ref, err)
	}

	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return CellRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidCell, ref, err)
		}
	}

	return CellRange{
		MinCol: min(startCol, endCol),
		MinRow: min(startRow, endRow),
		MaxCol: max(startCol, endCol),
		MaxRow: max(startRow, endRow),
	}, nil
}

// MustParseRange как ParseRange, но паникует на некорректном адресе. Для констант.
func MustParseRange(ref string) CellRange {
	r, err := ParseRange(ref)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains проверяет, попадает ли ячейка в диапазон
func (r CellRange) Contains(col, row int) bool {
	return r.MinRow <= row && row <= r.MaxRow &&
		r.MinCol <= col && col <= r.MaxCol
}

// TopLeft адрес левой верхней (якорной) ячейки
func (r CellRange) TopLeft() string {
	return cellName(r.MinCol, r.MinRow)
}

// BottomRight адрес правой нижней ячейки
func (r CellRange) BottomRight() string {
	return cellName(r.MaxCol, r.MaxRow)
}

func (r CellRange) String() string {
	return r.TopLeft() + ":" + r.BottomRight()
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row, col)
	}
	return name
}
