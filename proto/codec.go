// Package proto ledger.v1.LedgerService 的訊息與服務 (由 ledger.proto 產生)
//
// 預設以 protobuf 編碼；另註冊 content-subtype "json" (protojson) 供除錯與腳本呼叫
package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	protov2 "google.golang.org/protobuf/proto"
)

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ledger.proto

// ServiceName 完整服務名稱 (health check 使用)
const ServiceName = "ledger.v1.LedgerService"

// Codec JSON content-subtype，呼叫端以 grpc.CallContentSubtype(Codec) 選用
const Codec = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(protov2.Message)
	if !ok {
		return nil, fmt.Errorf("json codec: %T is not a proto message", v)
	}
	return protojson.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(protov2.Message)
	if !ok {
		return fmt.Errorf("json codec: %T is not a proto message", v)
	}
	return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, msg)
}

func (jsonCodec) Name() string {
	return Codec
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
