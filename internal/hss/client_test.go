package hss

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lynxis/pyhss-cli/internal/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		APIURL: url,
		APIKey: "testProvisioningKey",
	}
}

func TestGetSubscriberByIMSISuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// リクエスト検証
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/subscriber/imsi/001010123456789" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get(HeaderProvisioningKey) != "testProvisioningKey" {
			t.Errorf("expected Provisioning-Key header, got %q", r.Header.Get(HeaderProvisioningKey))
		}

		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]any{
			"subscriber_id":   7,
			"imsi":            "001010123456789",
			"auc_id":          12,
			"default_apn":     3,
			"apn_list":        "3,4",
			"enabled":         true,
			"roaming_enabled": true,
		})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	sub, err := client.GetSubscriberByIMSI(context.Background(), "001010123456789")
	if err != nil {
		t.Fatalf("GetSubscriberByIMSI failed: %v", err)
	}
	if sub == nil {
		t.Fatal("expected subscriber, got nil")
	}
	if sub.SubscriberID != 7 {
		t.Errorf("SubscriberID = %d, want 7", sub.SubscriberID)
	}
	if len(sub.APNList) != 2 || sub.APNList[0] != 3 || sub.APNList[1] != 4 {
		t.Errorf("APNList = %v, want [3 4]", sub.APNList)
	}
}

func TestGetSubscriberByIMSINotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	sub, err := client.GetSubscriberByIMSI(context.Background(), "001010123456789")
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if sub != nil {
		t.Errorf("expected nil subscriber for 404, got %+v", sub)
	}
}

func TestGetAUCByIMSIServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database down"}`))
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	_, err := client.GetAUCByIMSI(context.Background(), "001010123456789")
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if !apiErr.IsServerError() {
		t.Error("IsServerError() = false, want true")
	}
}

func TestPutAUCReturnsAssignedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/auc/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var entry AUCEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if entry.AMF != "8000" {
			t.Errorf("AMF = %q, want %q", entry.AMF, "8000")
		}
		if entry.OP != "" {
			t.Errorf("unset OP must be omitted, got %q", entry.OP)
		}

		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]any{
			"auc_id": 42,
			"imsi":   entry.IMSI,
			"ki":     entry.Ki,
			"opc":    entry.OPc,
			"amf":    entry.AMF,
			"sqn":    entry.SQN,
		})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	auc, err := client.PutAUC(context.Background(), &AUCEntry{
		IMSI: "001010123456789",
		Ki:   "00112233445566778899AABBCCDDEEFF",
		OPc:  "FFEEDDCCBBAA99887766554433221100",
		AMF:  "8000",
		SQN:  0,
	})
	if err != nil {
		t.Fatalf("PutAUC failed: %v", err)
	}
	if auc.AUCID != 42 {
		t.Errorf("AUCID = %d, want 42", auc.AUCID)
	}
}

func TestPutSubscriberSerializesAPNList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		// apn_listはワイヤ上ではカンマ結合文字列
		if raw["apn_list"] != "3,4" {
			t.Errorf("apn_list = %v, want %q", raw["apn_list"], "3,4")
		}

		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]any{"subscriber_id": 1, "imsi": raw["imsi"]})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	_, err := client.PutSubscriber(context.Background(), &SubscriberEntry{
		AUCID:          42,
		IMSI:           "001010123456789",
		Enabled:        true,
		DefaultAPN:     1,
		RoamingEnabled: true,
		APNList:        APNList{3, 4},
	})
	if err != nil {
		t.Fatalf("PutSubscriber failed: %v", err)
	}
}

func TestDeleteSubscriberSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/subscriber/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]any{"Result": "OK"})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	if err := client.DeleteSubscriber(context.Background(), 7); err != nil {
		t.Fatalf("DeleteSubscriber failed: %v", err)
	}
}

// HTTP 200でもResultマーカーが"OK"でない削除は失敗として扱う。
func TestDeleteSubscriberFailedMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]any{"Result": "FAIL"})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	err := client.DeleteSubscriber(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error for failed result marker")
	}

	var resultErr *DeleteResultError
	if !errors.As(err, &resultErr) {
		t.Fatalf("expected *DeleteResultError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("DeleteResultError must unwrap to ErrInvalidResponse")
	}
}

// 削除レスポンスがJSONオブジェクトでない場合も失敗として扱う。
func TestDeleteAUCNonObjectBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.Write([]byte(`"deleted"`))
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	err := client.DeleteAUC(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error for non-object body")
	}
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestListAPNs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apn/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode([]map[string]any{
			{"apn_id": 3, "apn": "internet", "apn_ambr_dl": 150000000, "apn_ambr_ul": 50000000, "qci": 9},
			{"apn_id": 4, "apn": "ims", "apn_ambr_dl": 8000, "apn_ambr_ul": 8000, "qci": 5},
		})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	apns, err := client.ListAPNs(context.Background())
	if err != nil {
		t.Fatalf("ListAPNs failed: %v", err)
	}
	if len(apns) != 2 {
		t.Fatalf("len(apns) = %d, want 2", len(apns))
	}
	if apns[0].APN != "internet" || apns[0].APNID != 3 {
		t.Errorf("apns[0] = %+v", apns[0])
	}
}

func TestListSubscribersPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("page = %q, want %q", r.URL.Query().Get("page"), "2")
		}
		if r.URL.Query().Get("page_size") != "50" {
			t.Errorf("page_size = %q, want %q", r.URL.Query().Get("page_size"), "50")
		}
		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	if _, err := client.ListSubscribers(context.Background(), 2, 50); err != nil {
		t.Fatalf("ListSubscribers failed: %v", err)
	}
}

// 資格情報が未設定の場合はProvisioning-Keyヘッダを付けない。
func TestNoProvisioningKeyHeaderWhenUnset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header[HeaderProvisioningKey]; ok {
			t.Error("Provisioning-Key header must not be set")
		}
		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	cfg := &config.Config{APIURL: server.URL}
	client := NewClient(cfg)
	if _, err := client.ListAPNs(context.Background()); err != nil {
		t.Fatalf("ListAPNs failed: %v", err)
	}
}
