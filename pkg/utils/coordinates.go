// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供极坐标与屏幕坐标之间的换算。
//
// # 坐标系统概述
//
//   - **屏幕坐标**：相对于游戏窗口左上角，Y 轴向下
//   - **轨道坐标**：(轨道半径, 角度)，圆心为场地中心，角度 0 指向 +X，顺时针为正（屏幕 Y 轴向下）
//
// # 核心转换公式
//
//	x = centerX + cos(angle) * r
//	y = centerY + sin(angle) * r
//
// 碰撞检测只比较距离平方，避免开方。
package utils

import "math"

// TwoPi 一整圈的弧度
const TwoPi = 2 * math.Pi

// PolarToScreen 将轨道坐标转换为屏幕坐标
//
// 参数：
//   - centerX, centerY: 圆心屏幕坐标
//   - r: 轨道半径
//   - angle: 角度（弧度），不要求归一化
//
// 返回：
//   - x, y: 屏幕坐标
func PolarToScreen(centerX, centerY, r, angle float64) (x, y float64) {
	return centerX + math.Cos(angle)*r, centerY + math.Sin(angle)*r
}

// DistanceSquared 返回两点距离的平方
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// WrapAngle 将任意角度归一化到 [0, 2π)
//
// 对任意大小的输入都成立（包括一次移动超过一整圈的情况）。
// NaN 和 ±Inf 归一化为 0。
func WrapAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}

	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -1e-17 + 2π 在浮点下会舍入成 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}
