package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger attaches request context to handler-level error logs.
type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	l.log.Log(logLevel, errDescription,
		zap.Error(err),
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
}

func NewLogger(l *zap.Logger) Logger {
	return &logger{
		log: l,
	}
}
