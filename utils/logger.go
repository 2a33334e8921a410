package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// Сервис пишет два файла: errors.log (сбои операторских API и почты)
// и panics.log (паники, перехваченные recovery middleware).
var (
	errorLogger *log.Logger
	panicLogger *log.Logger
)

func InitLogger() error {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}
	var err error
	if errorLogger, err = openLog("errors.log"); err != nil {
		return err
	}
	if panicLogger, err = openLog("panics.log"); err != nil {
		return err
	}
	return nil
}

func openLog(name string) (*log.Logger, error) {
	f, err := os.OpenFile(filepath.Join("logs", name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", name, err)
	}
	return log.New(f, "", log.LstdFlags), nil
}

// LogError пишет ошибку с местом вызова в errors.log
func LogError(err error, context string) {
	if errorLogger == nil {
		return
	}
	errorLogger.Printf("ERROR %s - %s: %v", callSite(2), context, err)
}

// LogPanic пишет перехваченную панику в panics.log
func LogPanic(recovered interface{}, context string) {
	if panicLogger == nil {
		return
	}
	panicLogger.Printf("PANIC %s - %s: %v", callSite(3), context, recovered)
}

func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
