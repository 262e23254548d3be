// StyleMatch TUI
// Подбор похожих вещей каталога по текстовому описанию
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/stylematch/internal/ui"
	appcomponents "github.com/ilkoid/stylematch/pkg/app"
	"github.com/ilkoid/stylematch/pkg/utils"
)

var configFlag = flag.String("config", "", "Path to config.yaml (default: search standard locations)")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	// 0. Инициализируем логгер
	if err := utils.InitLogger(); err != nil {
		log.Printf("Warning: failed to init logger: %v", err)
	}
	defer utils.Close()

	utils.Info("StyleMatch application started")

	// 1. Находим конфиг и собираем компоненты
	cfgPath := findConfigPath(*configFlag)
	utils.Info("Config path resolved", "path", cfgPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer utils.SetupGracefulShutdown(cancel)()

	components, err := appcomponents.Initialize(ctx, cfgPath)
	if err != nil {
		utils.Error("Components initialization failed", "error", err)
		return fmt.Errorf("initialization failed: %w", err)
	}

	log.Printf("Catalog loaded: %d items (source: %s)",
		components.Graph.Len(), components.Config.Catalog.Source)

	// 2. Запускаем Bubble Tea программу
	utils.Info("Starting TUI", "catalog_size", components.Graph.Len())

	p := tea.NewProgram(
		ui.InitialModel(components),
		// Без AltScreen - позволяет выделять текст мышкой и копировать в буфер обмена
	)

	if _, err := p.Run(); err != nil {
		utils.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	utils.Info("Application exited normally")
	return nil
}

// findConfigPath ищет config.yaml: флаг → cwd → директория бинарника.
func findConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	cfgPath := "config.yaml"
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath
	}

	if execPath, err := os.Executable(); err == nil {
		cfgPath = filepath.Join(filepath.Dir(execPath), "config.yaml")
		if _, err := os.Stat(cfgPath); err == nil {
			return cfgPath
		}
	}

	return "config.yaml"
}
