package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// DefaultSheetName имя листа шаблона по умолчанию
const DefaultSheetName = "ipms_master_bill"

// defaultLabels подписи и постоянные значения шаблона по умолчанию
var defaultLabels = []struct {
	cell  string
	value interface{}
}{
	{"C3", "Reservation Confirmation"},

	{"B5", "Booking Name"},
	{"C6", "Phone No."},
	{"B7", "Company Name"},
	{"B8", "Booking Date"},
	{"C9", "Email"},
	{"D10", "Remark"},

	{"O5", "Hotel"},
	{"O6", "Page"},
	{"O7", "Address"},
	{"O8", "Deposit(CFA)"},

	{"F5", ":"}, {"F6", ":"}, {"F7", ":"}, {"F8", ":"}, {"F9", ":"}, {"F10", ":"},
	{"S5", ":"}, {"S6", ":"}, {"S7", ":"}, {"S8", ":"},

	{"J6", "+240 333091088"},
	{"W5", "Hotel Anda Malabo"},
	{"W6", "1/ of 1"},
	{"W7", "Malabo II, Malabo, G.E"},
	{"W8", "0"},

	{"C13", "Thank you for choosing to stay at Hotel Anda Malabo. We are pleased to confirm the following reservation for you"},

	{"C16", "Confirmation No"},
	{"F16", ":"},
	{"C18", "Guest Name"},
	{"F18", ":"},

	{"D21", "Name"},
	{"H21", "Arrival Date"},
	{"K21", "Departure Date"},
	{"L21", "Room Type"},
	{"Q21", "Quantity"},
	{"T21", "Nights"},
	{"V21", "Room Rate"},
	{"Z21", "Total (" + domain.Currency + ")"},

	{"L22", domain.DefaultRoomType},
	{"V22", domain.RoomRate},
}

// defaultMerges объединённые области шаблона по умолчанию
var defaultMerges = []string{
	"C3:N3",
	"J5:N5", "J8:N8", "J17:N17", "J19:N19",
	"W5:Z5", "W7:Z7",
	"C13:Z13",
	"D21:G21", "H21:J21", "L21:P21", "Q21:S21", "T21:U21", "V21:Y21",
	"D22:G22", "H22:J22", "L22:P22", "Q22:S22", "T22:U22", "V22:Y22",
}

const totalFormula = "T22*V22*Q22"

// TemplateInfo сведения о шаблоне для проверки
type TemplateInfo struct {
	SheetName string
	KeyCells  map[string]string
}

// CreateDefault создает шаблон по умолчанию по пути path
func CreateDefault(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DefaultSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for _, l := range defaultLabels {
		if err := f.SetCellValue(DefaultSheetName, l.cell, l.value); err != nil {
			return fmt.Errorf("set %s: %w", l.cell, err)
		}
	}

	if err := f.SetCellFormula(DefaultSheetName, "Z22", totalFormula); err != nil {
		return fmt.Errorf("set Z22 formula: %w", err)
	}

	for _, ref := range defaultMerges {
		r := MustParseRange(ref)
		if err := f.MergeCell(DefaultSheetName, r.TopLeft(), r.BottomRight()); err != nil {
			return fmt.Errorf("merge %s: %w", ref, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}
	if err := f.SetCellStyle(DefaultSheetName, "C3", "C3", titleStyle); err != nil {
		return fmt.Errorf("style title: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(DefaultSheetName, "D21", "Z21", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create template dir: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

// EnsureTemplate создает шаблон по умолчанию, если файла нет. Возвращает true, если шаблон создан.
func EnsureTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := CreateDefault(path); err != nil {
		return false, err
	}
	return true, nil
}

// Inspect открывает шаблон и возвращает имя активного листа и значения ключевых ячеек.
// Для ячеек с формулой возвращается текст формулы ("=T22*V22*Q22").
func Inspect(path string) (*TemplateInfo, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrOpenTemplate, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenTemplate, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, ErrNoActiveSheet
	}

	info := &TemplateInfo{
		SheetName: sheet,
		KeyCells:  make(map[string]string, len(KeyCells)),
	}

	for _, cell := range KeyCells {
		formula, err := f.GetCellFormula(sheet, cell)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrOpenTemplate, cell, err)
		}
		if formula != "" {
			if !strings.HasPrefix(formula, "=") {
				formula = "=" + formula
			}
			info.KeyCells[cell] = formula
			continue
		}

		value, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrOpenTemplate, cell, err)
		}
		info.KeyCells[cell] = value
	}

	return info, nil
}
