package hss

// HTTPヘッダ名
const (
	HeaderProvisioningKey = "Provisioning-Key"
	HeaderContentType     = "Content-Type"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// 削除レスポンスの成功マーカー
const (
	DeleteResultField = "Result"
	DeleteResultOK    = "OK"
)

// クエリパラメータ名
const (
	QueryPage     = "page"
	QueryPageSize = "page_size"
)
