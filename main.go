package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vpad/pkg/app"
	"github.com/decker502/vpad/pkg/utils"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	skinPath := flag.String("skin", "", "path to a skin profile YAML (empty = built-in layout)")
	flag.Parse()

	overlayApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		SkinPath: *skinPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(1000, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("vpad - 虚拟手柄覆盖层")
	if utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(overlayApp); err != nil {
		log.Fatal(err)
	}
}
