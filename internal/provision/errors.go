package provision

import "errors"

// センチネルエラー
var (
	// ErrInvalidArgument は事前バリデーションで弾かれた入力を表す。
	// このエラーが返る経路ではネットワークI/Oは発生しない。
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound は参照対象のエンティティが存在しない場合のエラー
	ErrNotFound = errors.New("not found")

	// ErrConflict は作成対象のエンティティが既に存在する場合のエラー
	ErrConflict = errors.New("already exists")

	// ErrPreconditionFailed は依存する前提エンティティが存在しない場合のエラー
	ErrPreconditionFailed = errors.New("required entity is missing")
)
