//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/tuning.yaml 必须与根目录的 data/tuning.yaml 保持一致。
package mobile

import "embed"

//go:embed data/tuning.yaml
var dataFS embed.FS
