// Package utils предоставляет простой файловый логгер и утилиты
// обработки изображений.
//
// Логгер пишет в .log файл в текущей директории (stdout занят TUI).
// Thread-safe через sync.Mutex.
package utils

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	logFile  *os.File
	logMutex sync.Mutex
)

// InitLogger создает/открывает .log файл в текущей директории.
//
// Имя файла: stylematch-YYYY-MM-DD-HH-MM.log. Повторный вызов — no-op.
func InitLogger() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		return nil
	}

	filename := fmt.Sprintf("stylematch-%s.log", time.Now().Format("2006-01-02-15-04"))

	var err error
	logFile, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Пишем напрямую, мьютекс уже захвачен
	line := fmt.Sprintf("[%s] INFO: logger initialized file=%s\n",
		time.Now().Format("2006-01-02 15:04:05"), filename)
	if _, err := logFile.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "%s", line)
	}

	return nil
}

// Info - информационное сообщение.
func Info(msg string, keyvals ...any) {
	log("INFO", msg, keyvals...)
}

// Error - сообщение об ошибке.
func Error(msg string, keyvals ...any) {
	log("ERROR", msg, keyvals...)
}

// Debug - отладочное сообщение.
func Debug(msg string, keyvals ...any) {
	log("DEBUG", msg, keyvals...)
}

// Warn - предупреждение.
func Warn(msg string, keyvals ...any) {
	log("WARN", msg, keyvals...)
}

// log - внутренняя функция записи в лог.
//
// Формат: [YYYY-MM-DD HH:MM:SS] LEVEL: message key1=value1 key2=value2
// До InitLogger вызовы молча игнорируются. При ошибке записи в файл —
// fallback на stderr.
func log(level, msg string, keyvals ...any) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile == nil {
		return
	}

	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	line += "\n"

	if _, err := logFile.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "%s", line)
		return
	}
	if err := logFile.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "[LOGGER WARNING: Sync failed: %v]\n", err)
	}
}

// Close закрывает лог-файл.
//
// Вызывается через defer в main().
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "[LOGGER WARNING: Close failed: %v]\n", err)
		}
		logFile = nil
	}
}
