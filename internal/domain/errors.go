package domain

import "errors"

// ErrInvalidConfiguration 生成配置非法（受试者数或月数 < 1）
// 在任何采样开始之前同步返回，不产生部分数据集。
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInsufficientData 对空记录集合请求验证
var ErrInsufficientData = errors.New("insufficient data")

// ErrDatasetNotFound 数据集不存在（HTTP 层内存库）
var ErrDatasetNotFound = errors.New("dataset not found")
