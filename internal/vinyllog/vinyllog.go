// Package vinyllog provides the structured logger every layer of the
// session uses to record statement execution, following the
// logrus.Fields convention.
package vinyllog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger. jsonFormat selects logrus's JSONFormatter
// instead of its default text formatter, for log aggregation.
func New(jsonFormat bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	if jsonFormat {
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	return log
}

// StatementFields builds the common field set logged around statement
// execution: the statement's kind under "stmt_kind". Callers add the
// elapsed time and any error to the entry themselves.
func StatementFields(kind string) logrus.Fields {
	return logrus.Fields{"stmt_kind": kind}
}
