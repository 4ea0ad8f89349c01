package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/logger"
)

// Client Pinata风格固定服务客户端
type Client struct {
	endpoint   string
	jwt        string
	gateway    string
	httpClient *http.Client
}

// pinResponse 固定服务响应体
type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
	PinSize  int64  `json:"PinSize"`
}

// pinMetadata 固定服务的文件元数据
type pinMetadata struct {
	Name      string            `json:"name"`
	Keyvalues map[string]string `json:"keyvalues,omitempty"`
}

// Init 根据配置创建固定服务客户端
func Init(cfg config.PinningConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("pinning endpoint not configured")
	}
	if cfg.JWT == "" {
		return nil, fmt.Errorf("pinning jwt not configured")
	}

	return &Client{
		endpoint: cfg.Endpoint,
		jwt:      cfg.JWT,
		gateway:  strings.TrimSuffix(cfg.Gateway, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Pin 上传文件到固定服务，返回CID与取回地址
func (c *Client) Pin(ctx context.Context, body io.Reader, filename, contentType string, meta map[string]string) (*PinResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	// 文件部分，保留原始Content-Type
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, apperr.Upstream("failed to build upload request", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, apperr.Upstream("failed to read upload body", err)
	}

	// 元数据部分
	metaBytes, err := json.Marshal(pinMetadata{Name: filename, Keyvalues: meta})
	if err != nil {
		return nil, apperr.Upstream("failed to encode pin metadata", err)
	}
	if err := writer.WriteField("pinataMetadata", string(metaBytes)); err != nil {
		return nil, apperr.Upstream("failed to build upload request", err)
	}

	if err := writer.Close(); err != nil {
		return nil, apperr.Upstream("failed to build upload request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, apperr.Upstream("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("pinning service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, apperr.Newf(apperr.KindUpstream, "pinning service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return nil, apperr.Upstream("failed to decode pinning response", err)
	}
	if pinned.IpfsHash == "" {
		return nil, apperr.New(apperr.KindUpstream, "pinning response missing content hash")
	}

	logger.Info("Pinned file %s, cid=%s size=%d", filename, pinned.IpfsHash, pinned.PinSize)

	return &PinResult{
		Cid:      pinned.IpfsHash,
		ImageURL: c.GatewayURL(pinned.IpfsHash),
		Size:     pinned.PinSize,
	}, nil
}

// GatewayURL 根据CID拼接网关取回地址
func (c *Client) GatewayURL(cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", c.gateway, cid)
}
