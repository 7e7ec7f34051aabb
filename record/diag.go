package record

import (
	"github.com/sirupsen/logrus"
)

// Keys added to every diagnostic field map next to the record's own fields.
const (
	LogKeyTemplateID = "template_id"
	LogKeyLength     = "record_length"
)

// LogFields returns the introspection listing of r as logrus fields, plus the
// template id and record length. It never encodes the record.
func LogFields(r Record) logrus.Fields {
	fields := r.Fields()
	out := make(logrus.Fields, len(fields)+2)
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	out[LogKeyTemplateID] = r.TemplateID()
	out[LogKeyLength] = r.Length()

	return out
}

// LogEntry returns an entry of logger carrying LogFields(r).
// A nil logger uses the logrus standard logger.
func LogEntry(logger *logrus.Logger, r Record) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return logger.WithFields(LogFields(r))
}
