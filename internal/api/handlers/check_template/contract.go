package check_template

import "github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"

type TemplateInspector interface {
	TemplatePath() string
	InspectTemplate() (*spreadsheet.TemplateInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
