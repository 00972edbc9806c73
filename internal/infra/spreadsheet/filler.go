package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// FillInput данные для заполнения шаблона
type FillInput struct {
	Booking     *domain.BookingRequest
	Number      domain.ConfirmationNumber
	GeneratedAt time.Time
}

// FillResult результат заполнения
type FillResult struct {
	FileName  string
	FilePath  string
	SheetName string
	Restored  int // количество восстановленных объединений
}

// Filler заполняет копию шаблона данными бронирования
type Filler struct {
	templatePath string
	outputDir    string
	scratchDir   string
	fields       func(in FillInput) []FieldValue
	logger       Logger
}

// NewFiller создает filler. Временные копии шаблона создаются в scratchDir.
func NewFiller(templatePath, outputDir, scratchDir string, logger Logger) *Filler {
	return &Filler{
		templatePath: templatePath,
		outputDir:    outputDir,
		scratchDir:   scratchDir,
		fields:       FieldValues,
		logger:       logger,
	}
}

// TemplatePath путь к каноническому шаблону
func (f *Filler) TemplatePath() string {
	return f.templatePath
}

// EnsureTemplate создает шаблон по умолчанию, если его нет
func (f *Filler) EnsureTemplate() (bool, error) {
	created, err := EnsureTemplate(f.templatePath)
	if err != nil {
		return false, err
	}
	if created {
		f.logger.Warn("Filler: template %s was missing, default template created", f.templatePath)
	}
	return created, nil
}

// InspectTemplate возвращает сведения о каноническом шаблоне
func (f *Filler) InspectTemplate() (*TemplateInfo, error) {
	return Inspect(f.templatePath)
}

// Fill копирует шаблон, заполняет копию и сохраняет её в outputDir.
// Канонический шаблон не изменяется. Временная копия удаляется в любом случае.
func (f *Filler) Fill(ctx context.Context, in FillInput) (*FillResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Копия шаблона
	scratch := filepath.Join(f.scratchDir, "template_"+uuid.NewString()+domain.FileExtension)
	if err := copyFile(f.templatePath, scratch); err != nil {
		return nil, newFillError(StageCopy, err)
	}
	defer f.removeScratch(scratch)

	// 2. Открываем копию
	wb, err := excelize.OpenFile(scratch)
	if err != nil {
		return nil, newFillError(StageOpen, err)
	}
	defer func() {
		if err := wb.Close(); err != nil {
			f.logger.Warn("Filler: failed to close workbook %s: %v", scratch, err)
		}
	}()

	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	if sheet == "" {
		return nil, newFillError(StageOpen, ErrNoActiveSheet)
	}

	merged, err := readMerges(wb, sheet)
	if err != nil {
		return nil, newFillError(StageOpen, err)
	}

	// 3. План записи
	plan, err := BuildPlan(merged, DataTargets, f.fields(in))
	if err != nil {
		return nil, newFillError(StageWrite, err)
	}

	// 4-6. Снимаем объединения, пишем, восстанавливаем
	restored, err := f.apply(wb, sheet, plan)
	if err != nil {
		return nil, newFillError(StageWrite, err)
	}

	// 7. Сохраняем
	fileName := FileName(in.Number, in.Booking.Company)
	output := filepath.Join(f.outputDir, fileName)
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return nil, newFillError(StageSave, err)
	}
	if err := wb.SaveAs(output); err != nil {
		if rmErr := os.Remove(output); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			f.logger.Warn("Filler: failed to remove partial output %s: %v", output, rmErr)
		}
		return nil, newFillError(StageSave, err)
	}

	f.logger.Info("Filler: document %s saved to %s (sheet=%s, unmerged=%d, restored=%d)",
		in.Number, output, sheet, len(plan.Unmerge), restored)

	return &FillResult{
		FileName:  fileName,
		FilePath:  output,
		SheetName: sheet,
		Restored:  restored,
	}, nil
}

// apply применяет план к листу. Ошибка восстановления объединения не фатальна.
func (f *Filler) apply(wb *excelize.File, sheet string, plan *Plan) (int, error) {
	for _, r := range plan.Unmerge {
		if err := wb.UnmergeCell(sheet, r.TopLeft(), r.BottomRight()); err != nil {
			return 0, fmt.Errorf("unmerge %s: %w", r, err)
		}
	}

	for _, w := range plan.Writes {
		if err := wb.SetCellValue(sheet, w.Cell, w.Value); err != nil {
			return 0, fmt.Errorf("write %s: %w", w.Cell, err)
		}
	}

	restored := 0
	for _, r := range plan.Restore {
		if err := wb.MergeCell(sheet, r.TopLeft(), r.BottomRight()); err != nil {
			f.logger.Warn("Filler: could not re-merge %s: %v", r, err)
			continue
		}
		restored++
	}

	return restored, nil
}

func (f *Filler) removeScratch(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		f.logger.Warn("Filler: failed to remove scratch copy %s: %v", path, err)
	}
}

// readMerges возвращает объединённые диапазоны листа
func readMerges(wb *excelize.File, sheet string) ([]CellRange, error) {
	cells, err := wb.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	merged := make([]CellRange, 0, len(cells))
	for _, mc := range cells {
		r, err := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		merged = append(merged, r)
	}
	return merged, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
