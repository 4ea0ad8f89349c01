package pinning

import (
	"context"
	"io"
)

// PinResult 固定服务上传结果
type PinResult struct {
	Cid      string // 内容寻址标识
	ImageURL string // 网关取回地址
	Size     int64  // 固定字节数
}

// Pinner IPFS固定服务客户端接口
type Pinner interface {
	Pin(ctx context.Context, body io.Reader, filename, contentType string, meta map[string]string) (*PinResult, error)
}
