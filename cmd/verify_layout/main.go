// verify_layout 打印默认皮肤在多种容器尺寸下的布局
//
// 用于人工核对宽高比归一化和底部锚定：
// 相同的相对坐标在不同宽高比的容器上应得到视觉一致、
// 锚定在底部的布局。
//
// 运行：
//
//	go run ./cmd/verify_layout
package main

import (
	"fmt"

	"github.com/decker502/vpad/internal/skin"
	"github.com/decker502/vpad/pkg/geometry"
)

// 待核对的容器尺寸
var sizes = [][2]int{
	{2074, 874}, // 参考分辨率，heightDiff = 0
	{1000, 600},
	{1920, 1080},
	{800, 480},
}

func main() {
	profile := skin.DefaultProfile()

	for _, size := range sizes {
		frame := geometry.Frame{Width: size[0], Height: size[1]}
		fmt.Printf("== 容器 %dx%d  adjustedHeight=%.1f  heightDiff=%.1f\n",
			size[0], size[1], frame.AdjustedHeight(), frame.HeightDiff())

		for _, spec := range profile.Buttons {
			bounds := frame.Bounds(spec.RelativeX, spec.RelativeY, spec.RelativeWidth, spec.RelativeHeight)
			fmt.Printf("  %-10s anchor=(%6.1f, %6.1f)  bounds=%v  %dx%d\n",
				spec.ID,
				frame.AnchorX(spec.RelativeX), frame.AnchorY(spec.RelativeY),
				bounds, bounds.Dx(), bounds.Dy())
		}
		fmt.Println()
	}
}
