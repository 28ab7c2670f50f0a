package hss

import (
	"errors"
	"fmt"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse はPyHSS APIからのレスポンスが構造的に不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from pyhss api")
)

// APIError はHTTPレベルで失敗したAPI呼び出し（非2xx）を表す。
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pyhss api error: HTTP %d %s", e.StatusCode, e.Body)
}

// IsNotFound は対象エンティティ未登録エラーかどうかを判定する。
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError はサーバーエラーかどうかを判定する。
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError はトランスポートレベルの接続エラーを表す。
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// DeleteResultError はHTTPは成功したが削除結果マーカーが成功でない場合を表す。
// PyHSSはHTTP 200のまま {"Result": "FAIL"} を返すことがあり、これは失敗として扱う。
type DeleteResultError struct {
	Entity string
	ID     int
	Result any
}

func (e *DeleteResultError) Error() string {
	return fmt.Sprintf("couldn't delete %s id %d, pyhss responded %v", e.Entity, e.ID, e.Result)
}

func (e *DeleteResultError) Unwrap() error {
	return ErrInvalidResponse
}
