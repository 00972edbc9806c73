package spreadsheet

import "fmt"

// FieldValue значение для логической целевой ячейки шаблона
type FieldValue struct {
	Target string
	Value  interface{}
}

// CellWrite фактическая запись в ячейку
type CellWrite struct {
	Cell  string
	Value interface{}
}

// Plan набор действий над листом: снять объединения, записать значения, восстановить объединения
type Plan struct {
	Unmerge []CellRange
	Writes  []CellWrite
	Restore []CellRange
}

// BuildPlan строит план заполнения без обращения к файлу.
//
// Снимаются только те объединения, которые содержат хотя бы одну ячейку из targets,
// остальные не трогаются. Запись для значения, попадающего в объединённый диапазон,
// направляется в его левую верхнюю ячейку. Restore совпадает с Unmerge.
func BuildPlan(merged []CellRange, targets []string, values []FieldValue) (*Plan, error) {
	type coord struct{ col, row int }

	targetCoords := make([]coord, 0, len(targets))
	for _, t := range targets {
		r, err := ParseRange(t)
		if err != nil {
			return nil, err
		}
		targetCoords = append(targetCoords, coord{r.MinCol, r.MinRow})
	}

	plan := &Plan{}
	for _, mr := range merged {
		for _, c := range targetCoords {
			if mr.Contains(c.col, c.row) {
				plan.Unmerge = append(plan.Unmerge, mr)
				break
			}
		}
	}

	for _, v := range values {
		r, err := ParseRange(v.Target)
		if err != nil {
			return nil, err
		}
		if r.MinCol != r.MaxCol || r.MinRow != r.MaxRow {
			return nil, fmt.Errorf("%w: value target %q must be a single cell", ErrInvalidCell, v.Target)
		}

		cell := r.TopLeft()
		for _, mr := range merged {
			if mr.Contains(r.MinCol, r.MinRow) {
				cell = mr.TopLeft()
				break
			}
		}
		plan.Writes = append(plan.Writes, CellWrite{Cell: cell, Value: v.Value})
	}

	plan.Restore = append([]CellRange(nil), plan.Unmerge...)
	return plan, nil
}
