// Vision util — описание изображения вещи через vision модель.
//
// Берёт файл изображения, получает текстовое описание и (если не
// передан -describe-only) сразу матчит его против каталога.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilkoid/stylematch/pkg/app"
	"github.com/ilkoid/stylematch/pkg/utils"
)

var (
	configFlag   = flag.String("config", "config.yaml", "Path to config.yaml")
	imageFlag    = flag.String("image", "", "Path to image file (jpeg/png)")
	describeFlag = flag.Bool("describe-only", false, "Print the description without matching")
	topFlag      = flag.Int("top", 0, "Limit output to N matches (0 = config default)")
	timeoutFlag  = flag.Duration("timeout", 2*time.Minute, "Timeout for vision request")
)

func main() {
	flag.Parse()

	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger init failed: %v\n", err)
	}
	defer utils.Close()

	if *imageFlag == "" {
		fmt.Fprintln(os.Stderr, "Image path is required. Use -image flag.")
		os.Exit(1)
	}

	utils.Info("vision-util started", "config", *configFlag, "image", *imageFlag)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer utils.SetupGracefulShutdown(cancel)()

	components, err := app.Initialize(ctx, *configFlag)
	if err != nil {
		utils.Error("Initialization failed", "error", err)
		fmt.Fprintf(os.Stderr, "Initialization failed: %v\n", err)
		os.Exit(1)
	}

	if components.Vision == nil {
		fmt.Fprintln(os.Stderr, "No vision model configured. Set models.default_vision in config.yaml.")
		os.Exit(1)
	}

	imageData, err := os.ReadFile(*imageFlag)
	if err != nil {
		utils.Error("Failed to read image", "path", *imageFlag, "error", err)
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}

	visionCtx, visionCancel := context.WithTimeout(ctx, *timeoutFlag)
	defer visionCancel()

	description, err := components.Vision.Describe(visionCtx, imageData)
	if err != nil {
		utils.Error("Vision request failed", "error", err)
		fmt.Fprintf(os.Stderr, "Vision request failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Description ===\n%s\n", description)

	if *describeFlag {
		return
	}

	topN := *topFlag
	if topN <= 0 {
		topN = components.Config.Matching.GetDefaults().TopN
	}

	matches, err := components.MatchQuery(description, topN)
	if err != nil {
		utils.Error("Match failed", "error", err)
		fmt.Fprintf(os.Stderr, "Match failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Matches ===\n")
	for i, m := range matches {
		v := m.Vertex
		fmt.Printf("%2d. %-40s score=%.3f price=%.2f\n", i+1, v.Name, m.Weight, v.Price)
		if v.SourceLink != "" {
			fmt.Printf("    %s\n", v.SourceLink)
		}
	}
}
