// Optional operation tracing, disabled until a logger is injected.
package transforms

import (
	"io"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var logger = newDiscardLogger()

// SetLogger installs the logger used for debug tracing of Mat geometry.
// The default logger discards everything.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func logMat(op, name string, mat gocv.Mat) {
	if mat.Empty() {
		return
	}

	size := mat.Size()
	logger.WithFields(logrus.Fields{
		"op":       op,
		"mat":      name,
		"width":    size[1],
		"height":   size[0],
		"channels": mat.Channels(),
		"type":     int(mat.Type()),
	}).Debug("mat")
}
