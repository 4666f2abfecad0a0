package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// InstallZerologWarnSink routes library warnings (errors.Warn) to a zerolog
// logger writing to w. Warning types implementing zerolog.LogObjectMarshaler,
// such as ConvergenceWarning, are emitted with their structured fields.
func InstallZerologWarnSink(w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
	return logger
}
