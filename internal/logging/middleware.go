package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// Middleware attaches a LogData to each request and emits one summary entry
// when the request completes.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		if requestID, err := uuid.NewV4(); err == nil {
			logData.AddData("requestID", requestID.String())
		}
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		name := "Request"
		if op := ctx.Operation(); op != nil && op.OperationID != "" {
			name = op.OperationID
		}

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= 500 {
			logData.Log().Errorf("Handler.%v.Error", name)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", name)
	}
}
