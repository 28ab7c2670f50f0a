package config

import "time"

// PyHSS API接続設定
const (
	// RequestTimeout はAPIリクエスト全体のタイムアウト
	RequestTimeout = 30 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "pyhss-api"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// 一覧取得のデフォルトページング
const (
	DefaultListLimit = 100
	DefaultListPage  = 0
)
