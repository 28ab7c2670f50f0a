package hss

import (
	"encoding/json"
	"strconv"
	"strings"
)

// APNList はAPN IDの順序付きリスト。
// ワイヤ上ではカンマ結合文字列（例: "3,4"）としてやり取りされるため、
// JSONエンコード境界でのみ文字列に変換する。
type APNList []int

// String はワイヤ形式のカンマ結合文字列を返す。
func (l APNList) String() string {
	parts := make([]string, len(l))
	for i, id := range l {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// MarshalJSON はワイヤ形式（カンマ結合文字列）でエンコードする。
func (l APNList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON はワイヤ形式のカンマ結合文字列をパースする。
func (l *APNList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*l = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make(APNList, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

// MSISDNList はMSISDNの順序付きリスト。ワイヤ上ではカンマ結合文字列になる。
type MSISDNList []string

// String はワイヤ形式のカンマ結合文字列を返す。
func (l MSISDNList) String() string {
	return strings.Join(l, ",")
}

// MarshalJSON はワイヤ形式（カンマ結合文字列）でエンコードする。
func (l MSISDNList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON はワイヤ形式のカンマ結合文字列をパースする。
func (l *MSISDNList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(raw, ",")
	return nil
}

// Subscriber は加入者レコードを表す。
type Subscriber struct {
	SubscriberID   int     `json:"subscriber_id"`
	IMSI           string  `json:"imsi"`
	AUCID          int     `json:"auc_id"`
	DefaultAPN     int     `json:"default_apn"`
	APNList        APNList `json:"apn_list"`
	MSISDN         string  `json:"msisdn,omitempty"`
	Enabled        bool    `json:"enabled"`
	RoamingEnabled bool    `json:"roaming_enabled"`
	UEAmbrDL       int64   `json:"ue_ambr_dl,omitempty"`
	UEAmbrUL       int64   `json:"ue_ambr_ul,omitempty"`
}

// SubscriberEntry は加入者作成リクエストを表す。
// default_apnとapn_listは独立した参照で、apn_listにdefault_apnを含めない。
type SubscriberEntry struct {
	AUCID          int     `json:"auc_id"`
	IMSI           string  `json:"imsi"`
	Enabled        bool    `json:"enabled"`
	DefaultAPN     int     `json:"default_apn"`
	RoamingEnabled bool    `json:"roaming_enabled"`
	APNList        APNList `json:"apn_list"`
	MSISDN         string  `json:"msisdn,omitempty"`
}

// AUC は認証センターレコードを表す。opcとopは排他。
type AUC struct {
	AUCID int    `json:"auc_id"`
	IMSI  string `json:"imsi"`
	Ki    string `json:"ki"`
	OPc   string `json:"opc,omitempty"`
	OP    string `json:"op,omitempty"`
	AMF   string `json:"amf"`
	SQN   int64  `json:"sqn"`
	ICCID string `json:"iccid,omitempty"`
}

// AUCEntry はAUCレコード作成リクエストを表す。
type AUCEntry struct {
	IMSI  string `json:"imsi"`
	Ki    string `json:"ki"`
	OPc   string `json:"opc,omitempty"`
	OP    string `json:"op,omitempty"`
	AMF   string `json:"amf"`
	SQN   int64  `json:"sqn"`
	ICCID string `json:"iccid,omitempty"`
}

// APN はAPNプロファイルを表す。
type APN struct {
	APNID                      int    `json:"apn_id"`
	APN                        string `json:"apn"`
	APNAmbrDL                  int64  `json:"apn_ambr_dl"`
	APNAmbrUL                  int64  `json:"apn_ambr_ul"`
	QCI                        int    `json:"qci"`
	ARPPriority                int    `json:"arp_priority"`
	ARPPreemptionCapability    bool   `json:"arp_preemption_capability"`
	ARPPreemptionVulnerability bool   `json:"arp_preemption_vulnerability"`
}

// APNEntry はAPNプロファイル作成リクエストを表す。
type APNEntry struct {
	APN                        string `json:"apn"`
	APNAmbrDL                  int64  `json:"apn_ambr_dl"`
	APNAmbrUL                  int64  `json:"apn_ambr_ul"`
	QCI                        int    `json:"qci"`
	ARPPriority                int    `json:"arp_priority"`
	ARPPreemptionCapability    bool   `json:"arp_preemption_capability"`
	ARPPreemptionVulnerability bool   `json:"arp_preemption_vulnerability"`
}

// IMSSubscriber はIMS加入者レコードを表す。
type IMSSubscriber struct {
	IMSSubscriberID int        `json:"ims_subscriber_id"`
	IMSI            string     `json:"imsi"`
	MSISDN          string     `json:"msisdn"`
	MSISDNList      MSISDNList `json:"msisdn_list"`
	PCSCF           string     `json:"pcscf,omitempty"`
	SCSCF           string     `json:"scscf,omitempty"`
	SCSCFTimestamp  string     `json:"scscf_timestamp,omitempty"`
}

// IMSSubscriberEntry はIMS加入者作成リクエストを表す。
// msisdnが主番号、msisdn_listが残りの番号を保持する。
type IMSSubscriberEntry struct {
	IMSI       string     `json:"imsi"`
	MSISDN     string     `json:"msisdn"`
	MSISDNList MSISDNList `json:"msisdn_list"`
}
