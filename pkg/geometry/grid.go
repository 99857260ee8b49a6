package geometry

import "math"

// Snap 将坐标吸附到最近的网格线上
//
// 网格以容器中心为基准，而不是以原点 (0,0) 为基准：
// 先计算网格相位 start = center mod gridSize（第一条网格线相对 0 的偏移），
// 再减去坐标相对网格的余量。这样当容器尺寸不是 gridSize 的整数倍时，
// 网格线仍然关于屏幕中心对称。
//
// 参数：
//   - v: 原始坐标
//   - center: 容器中心坐标（与 v 同轴）
//   - gridSize: 网格间距；<= 0 视为禁用吸附，原样返回 v
//
// 返回：
//   - 吸附后的坐标
func Snap(v, center, gridSize float64) float64 {
	if gridSize <= 0 {
		return v
	}
	start := math.Mod(center, gridSize)
	offset := math.Mod(v-start, gridSize)
	return v - offset
}

// SnapPoint 对一个点的两个轴分别做网格吸附
func SnapPoint(x, y, centerX, centerY, gridSize float64) (float64, float64) {
	return Snap(x, centerX, gridSize), Snap(y, centerY, gridSize)
}
