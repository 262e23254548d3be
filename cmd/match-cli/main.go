// Match CLI — одноразовый запуск матчинга без TUI.
//
// Полезно для скриптов и отладки: печатает топ-N похожих вещей
// каталога для переданного описания.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ilkoid/stylematch/pkg/app"
	"github.com/ilkoid/stylematch/pkg/utils"
)

var (
	configFlag = flag.String("config", "config.yaml", "Path to config.yaml")
	queryFlag  = flag.String("query", "", "Item description to match (or pass as positional args)")
	topFlag    = flag.Int("top", 0, "Limit output to N matches (0 = config default)")
)

func main() {
	flag.Parse()

	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger init failed: %v\n", err)
	}
	defer utils.Close()

	query := *queryFlag
	if query == "" && len(flag.Args()) > 0 {
		query = strings.Join(flag.Args(), " ")
	}
	if query == "" {
		fmt.Fprintln(os.Stderr, "Query is required. Use -query flag or pass as argument.")
		os.Exit(1)
	}

	utils.Info("match-cli started", "config", *configFlag, "query", query)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer utils.SetupGracefulShutdown(cancel)()

	components, err := app.Initialize(ctx, *configFlag)
	if err != nil {
		utils.Error("Initialization failed", "error", err)
		fmt.Fprintf(os.Stderr, "Initialization failed: %v\n", err)
		os.Exit(1)
	}

	topN := *topFlag
	if topN <= 0 {
		topN = components.Config.Matching.GetDefaults().TopN
	}

	matches, err := components.MatchQuery(query, topN)
	if err != nil {
		utils.Error("Match failed", "error", err)
		fmt.Fprintf(os.Stderr, "Match failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Query: %s\nCatalog: %d items\n\n", query, len(components.Records))
	for i, m := range matches {
		v := m.Vertex
		fmt.Printf("%2d. %-40s score=%.3f price=%.2f\n", i+1, v.Name, m.Weight, v.Price)
		if v.SourceLink != "" {
			fmt.Printf("    %s\n", v.SourceLink)
		}
	}
}
